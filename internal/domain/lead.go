package domain

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "Novo"
	LeadStatusInContact LeadStatus = "Em Contato"
	LeadStatusRenewal   LeadStatus = "Renovação"
	LeadStatusClosed    LeadStatus = "Fechado"
	LeadStatusLost      LeadStatus = "Perdido"
)

const InsuranceTypeRenewal = "Renovação"

type DealInfo struct {
	Insurer       string  `json:"insurer"`
	NetPremium    float64 `json:"netPremium"`
	Commission    float64 `json:"commission"` // percentual, ex: 15 = 15%
	Installments  string  `json:"installments"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	PaymentMethod string  `json:"paymentMethod"`
}

// CommissionValue é o valor da comissão em reais sobre o prêmio líquido.
func (d *DealInfo) CommissionValue() float64 {
	if d == nil {
		return 0
	}

	return d.NetPremium * d.Commission / 100
}

type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	VehicleModel  string     `json:"vehicleModel"`
	VehicleYear   string     `json:"vehicleYear"`
	City          string     `json:"city"`
	Phone         string     `json:"phone"`
	InsuranceType string     `json:"insuranceType"`
	Status        LeadStatus `json:"status"`
	Email         string     `json:"email"`
	AssignedTo    string     `json:"assignedTo"`
	CreatedAt     string     `json:"createdAt"`
	Notes         string     `json:"notes"`
	ScheduledDate string     `json:"scheduledDate"`
	DealInfo      *DealInfo  `json:"dealInfo,omitempty"`

	CartaoPortoNovo  *bool   `json:"cartaoPortoNovo,omitempty"`
	InsurerConfirmed *bool   `json:"insurerConfirmed,omitempty"`
	ClosedAt         *string `json:"closedAt,omitempty"`
	UsuarioID        *string `json:"usuarioId,omitempty"`
	RegisteredAt     *string `json:"registeredAt,omitempty"`

	// Endossos são repassados sem interpretação.
	Endorsements []any `json:"endorsements"`
}

func (l *Lead) IsClosed() bool {
	return l.Status == LeadStatusClosed
}
