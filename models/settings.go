package models

type GeneralSettings struct {
	StoreName      string `json:"storeName"`
	StoreEmail     string `json:"storeEmail"`
	StoreLogo      string `json:"storeLogo"`
	CurrencySymbol string `json:"currencySymbol"`
	PhoneNumber    string `json:"phoneNumber"`
}

type PaymentSettings struct {
	RevolutEnabled       bool   `json:"revolutEnabled"`
	RevolutMerchantID    string `json:"revolutMerchantId"`
	RevolutAPIKey        string `json:"revolutApiKey"`
	PaypalEnabled        bool   `json:"paypalEnabled"`
	PaypalEmail          string `json:"paypalEmail"`
	StripeEnabled        bool   `json:"stripeEnabled"`
	StripePublishableKey string `json:"stripePublishableKey"`
	StripeSecretKey      string `json:"stripeSecretKey"`
}

type ShippingSettings struct {
	FreeShippingThreshold        float64 `json:"freeShippingThreshold"`
	StandardShippingRate         float64 `json:"standardShippingRate"`
	ExpressShippingRate          float64 `json:"expressShippingRate"`
	InternationalShippingEnabled bool    `json:"internationalShippingEnabled"`
}

type EmailSettings struct {
	OrderConfirmationTemplate    string `json:"orderConfirmationTemplate"`
	ShippingConfirmationTemplate string `json:"shippingConfirmationTemplate"`
	AdminNotificationEnabled     bool   `json:"adminNotificationEnabled"`
	AdminEmail                   string `json:"adminEmail"`
}

// StoreSettings is the admin-editable store configuration blob.
type StoreSettings struct {
	General  GeneralSettings  `json:"general"`
	Payment  PaymentSettings  `json:"payment"`
	Shipping ShippingSettings `json:"shipping"`
	Email    EmailSettings    `json:"email"`
}
