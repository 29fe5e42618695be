package domain

import "math"

// Consulting fees are denominated in 10,000-KRW units.
const (
	// defaultBaseFee is charged when the amount bracket is unknown.
	// An unrecognized bracket is priced defensively, never rejected.
	defaultBaseFee = 100

	// organizationMultiplier is the surcharge for cases against an
	// organization rather than an individual.
	organizationMultiplier = 1.3
)

// baseFees is the closed pricing table keyed by amount bracket.
var baseFees = map[AmountBracket]int{
	BracketUnder5M: 50,
	Bracket5To10M:  80,
	Bracket10To30M: 120,
	Bracket30To50M: 180,
	BracketOver50M: 250,
}

// Success-fee notes are fixed template strings chosen by role,
// not computed percentages.
const (
	creditorSuccessFeeNote = "성공보수: 회수 금액의 10~20% (사건 난이도에 따라 협의)"
	debtorSuccessFeeNote   = "성공보수: 감액 성공 금액의 10~20% (사건 난이도에 따라 협의)"
)

// FeeQuote is the computed fee for one submission.
// Immutable once computed; never persisted on its own.
type FeeQuote struct {
	// ConsultingFee is the up-front fee in 10,000-KRW units.
	ConsultingFee int

	// SuccessFeeNote describes the contingent fee for the requester's role.
	SuccessFeeNote string
}

// Price computes the fee quote for an amount bracket, counterparty kind and
// role. It is a pure, total function: unknown brackets fall back to the
// default base fee, and any counterparty other than organization prices as
// individual. The organization surcharge is rounded half-up to the nearest
// unit.
func Price(bracket AmountBracket, counterparty Counterparty, role Role) FeeQuote {
	base, ok := baseFees[bracket]
	if !ok {
		base = defaultBaseFee
	}

	fee := base
	if counterparty == CounterpartyOrganization {
		fee = int(math.Round(float64(base) * organizationMultiplier))
	}

	note := creditorSuccessFeeNote
	if role == RoleDebtor {
		note = debtorSuccessFeeNote
	}

	return FeeQuote{
		ConsultingFee:  fee,
		SuccessFeeNote: note,
	}
}
