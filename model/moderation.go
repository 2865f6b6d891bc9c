package model

// InspectionForm pre-fills the vehicle inspection form.
type InspectionForm struct {
	Product Product        `json:"product"`
	Images  []ProductImage `json:"images"`
}

type InspectionRequest struct {
	Fields *ProductUpdate
	Images []ImageFile
}

type InspectionResult struct {
	ProductID      int64    `json:"productId"`
	Verified       bool     `json:"verified"`
	ImagesUploaded int      `json:"imagesUploaded"`
	FieldsUpdated  bool     `json:"fieldsUpdated"`
	Notified       bool     `json:"notified"`
	Warnings       []string `json:"warnings,omitempty"`
}

type ModerationResult struct {
	ProductID int64  `json:"productId"`
	Status    string `json:"status"`
	Notified  bool   `json:"notified"`
}

type AuditEntry struct {
	ID         int64  `db:"id" json:"id"`
	ActorID    int64  `db:"actor_id" json:"actorId"`
	ActorEmail string `db:"actor_email" json:"actorEmail"`
	Action     string `db:"action" json:"action"`
	TargetType string `db:"target_type" json:"targetType"`
	TargetID   int64  `db:"target_id" json:"targetId"`
	Detail     string `db:"detail" json:"detail,omitempty"`
	CreatedAt  int64  `db:"created_at" json:"createdAt"`
}

type AuditFilter struct {
	TargetType string
	TargetID   int64
	Limit      int
}
