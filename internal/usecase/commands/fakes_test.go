//go:build unit

package commands_test

import (
	"context"
	"errors"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/domain/product"
	"smakownia-backend/internal/domain/user"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/infra/przelewy24"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeGateway struct {
	registered  []przelewy24.RegisterParams
	registerErr error

	verified  []int64
	verifyErr error

	signValid bool

	txInfo *payment.TransactionInfo
	txErr  error
}

func (g *fakeGateway) Register(_ context.Context, p przelewy24.RegisterParams) (*przelewy24.RegisterResult, error) {
	if g.registerErr != nil {
		return nil, g.registerErr
	}
	g.registered = append(g.registered, p)
	return &przelewy24.RegisterResult{
		SessionID:  p.SessionID,
		Token:      "TKN-1",
		PaymentURL: "https://sandbox.przelewy24.pl/trnRequest/TKN-1",
	}, nil
}

func (g *fakeGateway) GetBySessionID(_ context.Context, _ string) (*payment.TransactionInfo, error) {
	if g.txErr != nil {
		return nil, g.txErr
	}
	return g.txInfo, nil
}

func (g *fakeGateway) Verify(_ context.Context, _ string, orderID, _ int64) error {
	if g.verifyErr != nil {
		return g.verifyErr
	}
	g.verified = append(g.verified, orderID)
	return nil
}

func (g *fakeGateway) VerifyNotificationSign(_ payment.Notification) bool {
	return g.signValid
}

type fakeSessionStore struct {
	sessions map[string]*payment.Session
	putErr   error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*payment.Session{}}
}

func (s *fakeSessionStore) Put(_ context.Context, session *payment.Session) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *fakeSessionStore) TakeAndDelete(_ context.Context, sessionID string) (*payment.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, infra.WrapRepoErr("payment session not found", errors.New("no rows"), infra.KindNotFound)
	}
	delete(s.sessions, sessionID)
	return session, nil
}

type fakeLedger struct {
	claimed  map[string]bool
	claimErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{claimed: map[string]bool{}}
}

func (l *fakeLedger) TryClaim(_ context.Context, sessionID string, _ int64, _, _ string) (bool, error) {
	if l.claimErr != nil {
		return false, l.claimErr
	}
	if l.claimed[sessionID] {
		return false, nil
	}
	l.claimed[sessionID] = true
	return true, nil
}

func (l *fakeLedger) IsFulfilled(_ context.Context, sessionID string) (bool, error) {
	return l.claimed[sessionID], nil
}

type fakeMasterclassRepo struct {
	byID        map[string]*masterclass.Masterclass
	reduceCalls int
	reduceOK    bool
	reduceErr   error
}

func newFakeMasterclassRepo(list ...*masterclass.Masterclass) *fakeMasterclassRepo {
	r := &fakeMasterclassRepo{byID: map[string]*masterclass.Masterclass{}, reduceOK: true}
	for _, m := range list {
		r.byID[m.ID] = m
	}
	return r
}

func (r *fakeMasterclassRepo) FindByID(_ context.Context, id string) (*masterclass.Masterclass, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("masterclass not found", errors.New("no rows"), infra.KindNotFound)
	}
	return m, nil
}

func (r *fakeMasterclassRepo) Create(_ context.Context, m *masterclass.Masterclass) error {
	r.byID[m.ID] = m
	return nil
}

func (r *fakeMasterclassRepo) Update(_ context.Context, m *masterclass.Masterclass) error {
	if _, ok := r.byID[m.ID]; !ok {
		return infra.WrapRepoErr("masterclass not found", errors.New("no rows"), infra.KindNotFound)
	}
	r.byID[m.ID] = m
	return nil
}

func (r *fakeMasterclassRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return infra.WrapRepoErr("masterclass not found", errors.New("no rows"), infra.KindNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeMasterclassRepo) ReduceSlot(_ context.Context, id string) (bool, error) {
	r.reduceCalls++
	if r.reduceErr != nil {
		return false, r.reduceErr
	}
	if m, ok := r.byID[id]; ok && r.reduceOK {
		m.AvailableSlots--
		m.PickedSlots++
	}
	return r.reduceOK, nil
}

type fakeProductRepo struct {
	byID map[string]*product.OnlineProduct
}

func newFakeProductRepo(list ...*product.OnlineProduct) *fakeProductRepo {
	r := &fakeProductRepo{byID: map[string]*product.OnlineProduct{}}
	for _, p := range list {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*product.OnlineProduct, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound)
	}
	return p, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.OnlineProduct) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.OnlineProduct) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *fakeMailer) OperatorAddress() string {
	return "kontakt@smakownia.pl"
}

type fakeUserRepo struct {
	byEmail    map[string]*user.User
	lastLogins []uuid.UUID
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: map[string]*user.User{}}
	for _, u := range users {
		r.byEmail[u.Email().String()] = u
	}
	return r
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	r.lastLogins = append(r.lastLogins, userID)
	return nil
}

func testMasterclass(id string, slots int) *masterclass.Masterclass {
	return &masterclass.Masterclass{
		ID:             id,
		Title:          masterclass.LocalizedText{PL: "Warsztaty sushi", EN: "Sushi workshop"},
		Location:       masterclass.LocalizedText{PL: "Studio Smakownia", EN: "Smakownia Studio"},
		DateType:       masterclass.DateSingle,
		City:           "Warszawa",
		HourStart:      "10:00",
		HourEnd:        "14:00",
		Price:          decimal.NewFromInt(250),
		AvailableSlots: slots,
	}
}

type fakePartnerRepo struct {
	byID map[string]*catalog.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{byID: map[string]*catalog.Partner{}}
}

func (r *fakePartnerRepo) Create(_ context.Context, p *catalog.Partner) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakePartnerRepo) Update(_ context.Context, p *catalog.Partner) error {
	if _, ok := r.byID[p.ID]; !ok {
		return infra.WrapRepoErr("partner not found", errors.New("no rows"), infra.KindNotFound)
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakePartnerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return infra.WrapRepoErr("partner not found", errors.New("no rows"), infra.KindNotFound)
	}
	delete(r.byID, id)
	return nil
}

type fakeLocationRepo struct {
	byID map[string]*catalog.MapLocation
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{byID: map[string]*catalog.MapLocation{}}
}

func (r *fakeLocationRepo) Create(_ context.Context, l *catalog.MapLocation) error {
	r.byID[l.ID] = l
	return nil
}

func (r *fakeLocationRepo) Update(_ context.Context, l *catalog.MapLocation) error {
	if _, ok := r.byID[l.ID]; !ok {
		return infra.WrapRepoErr("location not found", errors.New("no rows"), infra.KindNotFound)
	}
	r.byID[l.ID] = l
	return nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return infra.WrapRepoErr("location not found", errors.New("no rows"), infra.KindNotFound)
	}
	delete(r.byID, id)
	return nil
}
