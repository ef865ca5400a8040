package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplicationStatus enum constants
const (
	StatusSubmitted       = "SUBMITTED"
	StatusUnderReview     = "UNDER_REVIEW"
	StatusAdditionalInfo  = "ADDITIONAL_INFO_REQUIRED"
	StatusPaymentPending  = "PAYMENT_PENDING"
	StatusPaymentVerified = "PAYMENT_VERIFIED"
	StatusApproved        = "APPROVED"
	StatusRejected        = "REJECTED"
)

// allowedTransitions maps the current status to the statuses an admin may move it to.
// REJECTED is terminal. APPROVED only advances to payment verification.
var allowedTransitions = map[string][]string{
	StatusSubmitted:       {StatusUnderReview},
	StatusUnderReview:     {StatusAdditionalInfo, StatusPaymentPending, StatusApproved, StatusRejected},
	StatusAdditionalInfo:  {StatusUnderReview},
	StatusPaymentPending:  {StatusPaymentVerified, StatusRejected},
	StatusPaymentVerified: {StatusApproved, StatusRejected},
	StatusApproved:        {StatusPaymentVerified},
	StatusRejected:        {},
}

// IsValidStatus reports whether s is a member of the status enumeration.
func IsValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether the status graph allows moving from -> to.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application represents a dealership application submitted by an applicant.
// Applicant, business and location fields are immutable after creation; only
// status-related fields change, and only through the status update flow.
type Application struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TrackingID string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"trackingId"` // Human-shareable, generated once at creation
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`                 // Owner reference; nullable until auth is wired in
	User       *User      `gorm:"foreignKey:UserID" json:"-"`

	// Personal information
	FirstName string `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(50);not null" json:"lastName"`
	Email     string `gorm:"type:varchar(100);not null" json:"email"`
	Phone     string `gorm:"type:varchar(15);not null" json:"phone"`

	// Business details
	BusinessName    string `gorm:"type:varchar(100);not null" json:"businessName"`
	BusinessType    string `gorm:"type:varchar(50);not null" json:"businessType"`
	GSTNumber       string `gorm:"type:varchar(15)" json:"gstNumber,omitempty"`
	PANNumber       string `gorm:"type:varchar(10);not null" json:"panNumber"`
	YearsInBusiness int    `gorm:"not null" json:"yearsInBusiness"`

	// Location details
	Address string `gorm:"type:text;not null" json:"address"`
	City    string `gorm:"type:varchar(50);not null" json:"city"`
	State   string `gorm:"type:varchar(50);not null" json:"state"`
	Pincode string `gorm:"type:varchar(10);not null" json:"pincode"`
	Area    string `gorm:"type:varchar(50);not null" json:"area"`

	// Additional information
	InvestmentCapacity string `gorm:"type:varchar(50)" json:"investmentCapacity,omitempty"`
	ExistingBusiness   string `gorm:"type:text" json:"existingBusiness,omitempty"`
	ReasonForInterest  string `gorm:"type:text" json:"reasonForInterest,omitempty"`

	// Admin fields
	Status            string           `gorm:"type:varchar(30);not null;default:'SUBMITTED';index" json:"status"`
	AdminNotes        string           `gorm:"type:text" json:"adminNotes,omitempty"`
	RejectionReason   string           `gorm:"type:text" json:"rejectionReason,omitempty"`
	PaymentAmount     *decimal.Decimal `gorm:"type:decimal(12,2)" json:"paymentAmount,omitempty"`
	ApprovalLetterURL string           `gorm:"type:varchar(255)" json:"approvalLetterUrl,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
