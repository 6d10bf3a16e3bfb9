package dto

type InitiatePaymentRequest struct {
	AmountIDR int    `json:"amount_idr" validate:"required,gt=0"`
	Purpose   string `json:"purpose" validate:"required,oneof=reattempt certificate"`
}

type InitiatePaymentResponse struct {
	Reference string `json:"reference"`
	AmountIDR int    `json:"amount_idr"`
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`
	SnapToken string `json:"snap_token,omitempty"`
}

type ReconcileResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	AmountIDR int    `json:"amount_idr"`
}

// PaymentConfigResponse untuk client: key publik + flag aktif.
type PaymentConfigResponse struct {
	Enabled   bool   `json:"enabled"`
	ClientKey string `json:"client_key,omitempty"`
}
