// models/borrow_request.go
package models

import "time"

const BorrowRequestTable = "borrow_requests"

// Status is the workflow stage of a request. Transitions are unconstrained:
// the admin may set any state from any state.
type Status string

const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusReturnPending Status = "return_pending"
	StatusReturned      Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusReturnPending, StatusReturned:
		return true
	}
	return false
}

// StatusOption carries the display label and badge class the admin table uses.
type StatusOption struct {
	Value Status `json:"value"`
	Label string `json:"label"`
	Class string `json:"className"`
}

func StatusOptions() []StatusOption {
	return []StatusOption{
		{StatusPending, "รออนุมัติ", "bg-yellow-100 text-yellow-800"},
		{StatusApproved, "อนุมัติแล้ว", "bg-green-100 text-green-800"},
		{StatusReturnPending, "รอคืนสินค้า", "bg-orange-100 text-orange-800"},
		{StatusReturned, "คืนแล้ว", "bg-pink-100 text-pink-800"},
	}
}

// BorrowRequest is one equipment/service loan request. Service is a
// denormalized copy of the catalog entry's name at submission time; deleting
// or renaming the service later does not touch historical rows.
type BorrowRequest struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Service    string     `gorm:"size:200;not null" json:"service"`
	Equipment  string     `gorm:"not null" json:"equipment"`
	Project    *string    `json:"project,omitempty"`
	Username   string     `gorm:"size:200;not null" json:"username"`
	Department string     `gorm:"size:200;not null" json:"department"`
	Contact    string     `gorm:"size:100;not null" json:"contact"`
	LineID     *string    `gorm:"column:line_id;size:100" json:"lineId,omitempty"`
	UsageDate  time.Time  `gorm:"index;not null" json:"usageDate"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	UsageTime  *string    `gorm:"size:100" json:"usageTime,omitempty"`
	Location   string     `gorm:"not null" json:"location"`
	Details    *string    `json:"details,omitempty"`
	Status     Status     `gorm:"size:20;not null;default:'pending'" json:"status"`
	AttachFile *string    `json:"attachFile,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (BorrowRequest) TableName() string { return BorrowRequestTable }
