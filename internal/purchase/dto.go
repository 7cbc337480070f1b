package purchase

// Line is one requested purchase of a mask from a pharmacy.
type Line struct {
	PharmacyName string `json:"pharmacy_name" validate:"required"`
	MaskName     string `json:"mask_name" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

// Request is the payload of a purchase call.
type Request struct {
	UserName string `json:"user_name" validate:"required"`
	Items    []Line `json:"items" validate:"required,min=1,dive"`
}

// Receipt summarizes a completed purchase.
type Receipt struct {
	UserID      int64   `json:"user_id"`
	UserName    string  `json:"user_name"`
	TotalAmount float64 `json:"total_amount"`
	Message     string  `json:"message"`
}
