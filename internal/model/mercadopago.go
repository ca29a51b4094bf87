package model

import "encoding/json"

type PaymentPayer struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

// PaymentMetadata carries the checkout hints we attach when creating a
// preference. Mercado Pago echoes metadata values back as either strings or
// numbers, so they are kept raw and parsed at use sites.
type PaymentMetadata struct {
	PresentID      json.RawMessage `json:"presentId"`
	PresentIDSnake json.RawMessage `json:"present_id"`
	Quantity       json.RawMessage `json:"quantity"`
}

type AdditionalInfoItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Quantity json.RawMessage `json:"quantity"`
}

type AdditionalInfo struct {
	Items []AdditionalInfoItem `json:"items"`
}

type Payment struct {
	ID                json.Number     `json:"id"`
	Status            string          `json:"status"`
	TransactionAmount float64         `json:"transaction_amount"`
	PaymentMethodID   string          `json:"payment_method_id"`
	PaymentTypeID     string          `json:"payment_type_id"`
	ExternalReference string          `json:"external_reference"`
	Payer             PaymentPayer    `json:"payer"`
	Metadata          PaymentMetadata `json:"metadata"`
	AdditionalInfo    AdditionalInfo  `json:"additional_info"`
}

type PaymentSearchResult struct {
	Results []Payment `json:"results"`
}

type MerchantOrderPayment struct {
	ID     json.Number `json:"id"`
	Status string      `json:"status"`
}

type MerchantOrder struct {
	ID                json.Number            `json:"id"`
	Status            string                 `json:"status"`
	ExternalReference string                 `json:"external_reference"`
	Payments          []MerchantOrderPayment `json:"payments"`
}

type MerchantOrderSearchResult struct {
	Elements []MerchantOrder `json:"elements"`
}

type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

type PreferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

type PreferencePayer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PreferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PreferencePaymentMethods struct {
	Installments int `json:"installments"`
}

type PreferenceRequest struct {
	Items               []PreferenceItem         `json:"items"`
	Payer               PreferencePayer          `json:"payer"`
	ExternalReference   string                   `json:"external_reference"`
	BackURLs            PreferenceBackURLs       `json:"back_urls"`
	PaymentMethods      PreferencePaymentMethods `json:"payment_methods"`
	NotificationURL     string                   `json:"notification_url,omitempty"`
	AutoReturn          string                   `json:"auto_return"`
	StatementDescriptor string                   `json:"statement_descriptor"`
	Metadata            map[string]any           `json:"metadata,omitempty"`
}

type PreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}
