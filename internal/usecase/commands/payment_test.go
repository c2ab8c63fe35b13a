//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/pkg/clock"
	"smakownia-backend/internal/pkg/errs"
	"smakownia-backend/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	gateway  *fakeGateway
	sessions *fakeSessionStore
	repo     *fakeMasterclassRepo
	clock    *clock.MockClock
	commands commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.gateway = &fakeGateway{}
	s.sessions = newFakeSessionStore()
	s.repo = newFakeMasterclassRepo(testMasterclass("1", 5))
	s.clock = clock.NewMockClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	s.commands = commands.NewPaymentCommands(s.gateway, s.sessions, s.repo, s.clock)
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) validParams() commands.CreatePaymentParams {
	return commands.CreatePaymentParams{
		Amount:   decimal.NewFromInt(250),
		ItemType: payment.ItemMasterclass,
		ItemID:   "1",
		FullName: "Anna Kowalska",
		Email:    "anna@example.com",
	}
}

func (s *PaymentCommandsTestSuite) TestCreatePayment() {
	result, err := s.commands.CreatePayment(context.Background(), s.validParams())
	s.Require().NoError(err)

	s.Require().Len(s.gateway.registered, 1)
	registered := s.gateway.registered[0]

	s.Run("mints a session id embedding the item", func() {
		s.True(strings.HasPrefix(result.SessionID, "masterclass_1_"))
		s.Equal(result.SessionID, registered.SessionID)
	})

	s.Run("converts whole zloty to grosz", func() {
		s.Equal(int64(25000), registered.Amount)
	})

	s.Run("stores the session before registering", func() {
		stored, ok := s.sessions.sessions[result.SessionID]
		s.Require().True(ok)
		s.Equal("Anna Kowalska", stored.FullName)
	})

	s.Run("enriches the description from the catalog", func() {
		s.Contains(registered.Description, "Warsztaty sushi")
		s.Contains(registered.Description, "Studio Smakownia")
	})
}

func (s *PaymentCommandsTestSuite) TestCreatePaymentValidation() {
	s.Run("rejects unknown item type", func() {
		p := s.validParams()
		p.ItemType = "subscription"
		_, err := s.commands.CreatePayment(context.Background(), p)
		s.ErrorIs(err, errs.ErrInvalidItemType)
	})

	s.Run("rejects non-positive amount", func() {
		p := s.validParams()
		p.Amount = decimal.Zero
		_, err := s.commands.CreatePayment(context.Background(), p)
		s.ErrorIs(err, errs.ErrInvalidAmount)
	})

	s.Run("rejects incomplete invoice data", func() {
		p := s.validParams()
		p.InvoiceNeeded = true
		p.CompanyName = "Smaki Sp. z o.o."
		_, err := s.commands.CreatePayment(context.Background(), p)
		s.ErrorIs(err, errs.ErrDomainValidation)
		s.Empty(s.gateway.registered)
	})
}

func (s *PaymentCommandsTestSuite) TestCreatePaymentFallbacks() {
	s.Run("unknown masterclass gets a generic description", func() {
		p := s.validParams()
		p.ItemID = "does-not-exist"
		_, err := s.commands.CreatePayment(context.Background(), p)
		s.Require().NoError(err)
		s.Equal("Smakownia - warsztaty kulinarne", s.gateway.registered[len(s.gateway.registered)-1].Description)
	})

	s.Run("online products skip catalog enrichment", func() {
		p := s.validParams()
		p.ItemType = payment.ItemOnlineProduct
		p.ItemID = "course-7"
		_, err := s.commands.CreatePayment(context.Background(), p)
		s.Require().NoError(err)
		s.Contains(s.gateway.registered[len(s.gateway.registered)-1].Description, "produkt online course-7")
	})
}

func (s *PaymentCommandsTestSuite) TestRetryPaymentMintsFreshSession() {
	p := s.validParams()
	p.SessionID = "masterclass_1_111" // stale id from the failed attempt

	first, err := s.commands.RetryPayment(context.Background(), p)
	s.Require().NoError(err)
	s.NotEqual("masterclass_1_111", first.SessionID)

	s.clock.Add(time.Second)
	second, err := s.commands.RetryPayment(context.Background(), p)
	s.Require().NoError(err)
	s.NotEqual(first.SessionID, second.SessionID)
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		want   int64
	}{
		{name: "whole zloty", amount: "250", want: 25000},
		{name: "grosz precision", amount: "249.99", want: 24999},
		{name: "half grosz rounds up", amount: "0.005", want: 1},
		{name: "sub-half grosz rounds down", amount: "0.004", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, commands.MinorUnits(amount))
		})
	}
}
