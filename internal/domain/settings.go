package domain

// AgencySettings é o objeto de configuração da agência. Existe um literal
// padrão usado como estado inicial e como base de merge quando o backend
// ainda não tem configurações gravadas.
type AgencySettings struct {
	Profile       SettingsProfile       `json:"profile"`
	Notifications SettingsNotifications `json:"notifications"`
	Regional      SettingsRegional      `json:"regional"`
	Compliance    SettingsCompliance    `json:"compliance"`
	QuietHours    SettingsQuietHours    `json:"quiet_hours"`
}

type SettingsProfile struct {
	AgencyName  string `json:"agency_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// SettingsNotifications liga/desliga notificações por canal e categoria
type SettingsNotifications struct {
	EmailCampaigns    bool `json:"email_campaigns"`
	EmailApplications bool `json:"email_applications"`
	EmailPayments     bool `json:"email_payments"`
	SMSCampaigns      bool `json:"sms_campaigns"`
	SMSPayments       bool `json:"sms_payments"`
	PushCampaigns     bool `json:"push_campaigns"`
	PushApplications  bool `json:"push_applications"`
	PushSystem        bool `json:"push_system"`
}

type SettingsRegional struct {
	Timezone   string `json:"timezone"`
	Currency   string `json:"currency"`
	DateFormat string `json:"date_format"`
	Language   string `json:"language"`
}

type SettingsCompliance struct {
	GDPRAccepted     bool `json:"gdpr_accepted"`
	MarketingConsent bool `json:"marketing_consent"`
	RetentionDays    int  `json:"retention_days"`
}

type SettingsQuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// DefaultAgencySettings monta o literal padrão de configurações, semeado com
// os campos de identidade do usuário autenticado quando disponíveis
func DefaultAgencySettings(user Claims) AgencySettings {
	return AgencySettings{
		Profile: SettingsProfile{
			AgencyName:  user.UserName,
			ContactName: user.UserName,
			Email:       user.UserEmail,
		},
		Notifications: SettingsNotifications{
			EmailCampaigns:    true,
			EmailApplications: true,
			EmailPayments:     true,
			PushCampaigns:     true,
			PushApplications:  true,
			PushSystem:        true,
		},
		Regional: SettingsRegional{
			Timezone:   "America/Sao_Paulo",
			Currency:   "USD",
			DateFormat: "MM/DD/YYYY",
			Language:   "en",
		},
		Compliance: SettingsCompliance{
			RetentionDays: 365,
		},
		QuietHours: SettingsQuietHours{
			Start: "22:00",
			End:   "08:00",
		},
	}
}

// SettingsUpdate é um patch parcial de configurações. Campos nil não alteram
// o valor atual.
type SettingsUpdate struct {
	Profile       *SettingsProfile       `json:"profile,omitempty"`
	Notifications *SettingsNotifications `json:"notifications,omitempty"`
	Regional      *SettingsRegional      `json:"regional,omitempty"`
	Compliance    *SettingsCompliance    `json:"compliance,omitempty"`
	QuietHours    *SettingsQuietHours    `json:"quiet_hours,omitempty"`
}

// Apply aplica o patch sobre uma cópia das configurações e a devolve
func (u SettingsUpdate) Apply(current AgencySettings) AgencySettings {
	merged := current

	if u.Profile != nil {
		merged.Profile = *u.Profile
	}
	if u.Notifications != nil {
		merged.Notifications = *u.Notifications
	}
	if u.Regional != nil {
		merged.Regional = *u.Regional
	}
	if u.Compliance != nil {
		merged.Compliance = *u.Compliance
	}
	if u.QuietHours != nil {
		merged.QuietHours = *u.QuietHours
	}

	return merged
}
