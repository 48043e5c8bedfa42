package domain

import "time"

// Document types a vendor can upload for verification.
const (
	DocTypeGovID    = "GovID"
	DocTypeBusiness = "Business"
)

const DocumentStatusPending = "pending"

// VendorProfile is the vendor-editable business profile. Verified is set by
// back-office staff only.
type VendorProfile struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Contact      string    `json:"contact" bson:"contact"`
	BusinessType string    `json:"business_type" bson:"business_type"`
	Bio          string    `json:"bio" bson:"bio"`
	Verified     bool      `json:"verified" bson:"verified"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// VendorApplication links a vendor to an event they want to work.
type VendorApplication struct {
	ID        string    `json:"id" bson:"_id"`
	VendorID  string    `json:"vendor_id" bson:"vendor_id"`
	EventID   string    `json:"event_id" bson:"event_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// VendorDocument is the metadata row for an uploaded verification file.
type VendorDocument struct {
	ID         string    `json:"id" bson:"_id"`
	VendorID   string    `json:"vendor_id" bson:"vendor_id"`
	DocType    string    `json:"doc_type" bson:"doc_type"`
	FileURL    string    `json:"file_url" bson:"file_url"`
	Status     string    `json:"status" bson:"status"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

// ValidDocType reports whether t is an accepted verification document type.
func ValidDocType(t string) bool {
	return t == DocTypeGovID || t == DocTypeBusiness
}
