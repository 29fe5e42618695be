package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice_BaseTable(t *testing.T) {
	tests := []struct {
		name         string
		bracket      AmountBracket
		counterparty Counterparty
		expectedFee  int
	}{
		{"under5M individual", BracketUnder5M, CounterpartyIndividual, 50},
		{"under5M organization", BracketUnder5M, CounterpartyOrganization, 65},
		{"5to10M individual", Bracket5To10M, CounterpartyIndividual, 80},
		{"5to10M organization", Bracket5To10M, CounterpartyOrganization, 104},
		{"10to30M individual", Bracket10To30M, CounterpartyIndividual, 120},
		{"10to30M organization", Bracket10To30M, CounterpartyOrganization, 156},
		{"30to50M individual", Bracket30To50M, CounterpartyIndividual, 180},
		{"30to50M organization", Bracket30To50M, CounterpartyOrganization, 234},
		{"over50M individual", BracketOver50M, CounterpartyIndividual, 250},
		{"over50M organization", BracketOver50M, CounterpartyOrganization, 325},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := Price(tt.bracket, tt.counterparty, RoleCreditor)
			assert.Equal(t, tt.expectedFee, quote.ConsultingFee)
		})
	}
}

func TestPrice_UnknownBracketFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name         string
		bracket      AmountBracket
		counterparty Counterparty
		expectedFee  int
	}{
		{"empty bracket individual", AmountBracket(""), CounterpartyIndividual, 100},
		{"garbage bracket individual", AmountBracket("not-a-bracket"), CounterpartyIndividual, 100},
		{"garbage bracket organization", AmountBracket("not-a-bracket"), CounterpartyOrganization, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := Price(tt.bracket, tt.counterparty, RoleDebtor)
			assert.Equal(t, tt.expectedFee, quote.ConsultingFee)
		})
	}
}

func TestPrice_SuccessFeeNoteByRole(t *testing.T) {
	creditor := Price(Bracket10To30M, CounterpartyIndividual, RoleCreditor)
	debtor := Price(Bracket10To30M, CounterpartyIndividual, RoleDebtor)

	assert.Equal(t, creditorSuccessFeeNote, creditor.SuccessFeeNote)
	assert.Equal(t, debtorSuccessFeeNote, debtor.SuccessFeeNote)
	assert.NotEqual(t, creditor.SuccessFeeNote, debtor.SuccessFeeNote)

	// The note depends only on role, never on bracket or counterparty.
	for _, bracket := range []AmountBracket{BracketUnder5M, BracketOver50M, AmountBracket("unknown")} {
		for _, cp := range []Counterparty{CounterpartyIndividual, CounterpartyOrganization} {
			assert.Equal(t, creditorSuccessFeeNote, Price(bracket, cp, RoleCreditor).SuccessFeeNote)
			assert.Equal(t, debtorSuccessFeeNote, Price(bracket, cp, RoleDebtor).SuccessFeeNote)
		}
	}
}

func TestPrice_IsDeterministic(t *testing.T) {
	first := Price(Bracket30To50M, CounterpartyOrganization, RoleCreditor)
	second := Price(Bracket30To50M, CounterpartyOrganization, RoleCreditor)

	assert.Equal(t, first, second)
}
