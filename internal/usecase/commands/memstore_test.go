//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/client"
	"studio-booking/internal/domain/ledger"
	"studio-booking/internal/domain/loyalty"
	"studio-booking/internal/domain/pricing"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errs.New("no rows in result set")

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", errNoRows, infra.KindNotFound)
}

type memState struct {
	bookings    map[uuid.UUID]booking.Record
	clients     map[uuid.UUID]client.Record
	users       map[uuid.UUID]shared.UserSnapshot
	subPackages map[uuid.UUID]shared.CatalogSnapshot
	addOns      map[uuid.UUID]catalog.AddOn
	promos      map[string]pricing.Promo
	loyalty     *loyalty.Config
	ledger      []*ledger.Transaction
	activity    []shared.ActivityEntry
	idempotency map[uuid.UUID]shared.IdempotencyRecord
	pushSubs    map[string]shared.PushSubscription
}

func newMemState() memState {
	return memState{
		bookings:    map[uuid.UUID]booking.Record{},
		clients:     map[uuid.UUID]client.Record{},
		users:       map[uuid.UUID]shared.UserSnapshot{},
		subPackages: map[uuid.UUID]shared.CatalogSnapshot{},
		addOns:      map[uuid.UUID]catalog.AddOn{},
		promos:      map[string]pricing.Promo{},
		idempotency: map[uuid.UUID]shared.IdempotencyRecord{},
		pushSubs:    map[string]shared.PushSubscription{},
	}
}

func (s memState) clone() memState {
	c := memState{
		bookings:    maps.Clone(s.bookings),
		clients:     maps.Clone(s.clients),
		users:       maps.Clone(s.users),
		subPackages: maps.Clone(s.subPackages),
		addOns:      maps.Clone(s.addOns),
		promos:      maps.Clone(s.promos),
		ledger:      slices.Clone(s.ledger),
		activity:    slices.Clone(s.activity),
		idempotency: maps.Clone(s.idempotency),
		pushSubs:    maps.Clone(s.pushSubs),
	}
	if s.loyalty != nil {
		cfg := *s.loyalty
		c.loyalty = &cfg
	}
	return c
}

// memStore runs every write transaction under one lock, which gives the same
// outcome as serializable isolation without retries. A failed transaction
// leaves the committed state untouched.
type memStore struct {
	mu    sync.Mutex
	state memState

	failBookingCreate error
}

func newMemStore() *memStore {
	return &memStore{state: newMemState()}
}

func (m *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	work := m.state.clone()
	if err := fn(ctx, &memTx{st: &work, store: m}); err != nil {
		return err
	}
	m.state = work
	return nil
}

func (m *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *memStore) CommandReads() shared.CommandReads {
	return memReads{st: &m.state}
}

func (m *memStore) snapshot() memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *memStore) seed(fn func(st *memState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.state)
}

// FindByID and FindByCode make memStore a queries.BookingReadStore.
func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.state.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return viewOf(r), nil
}

func (m *memStore) FindByCode(_ context.Context, code string) (*queries.BookingView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.state.bookings {
		if r.Code == code {
			return viewOf(r), nil
		}
	}
	return nil, notFound("booking")
}

func (m *memStore) ListFirstPage(context.Context, string, int32) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (m *memStore) ListKeyset(context.Context, string, time.Time, uuid.UUID, int32) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func viewOf(r booking.Record) *queries.BookingView {
	return &queries.BookingView{
		ID:             r.ID,
		Code:           r.Code,
		ClientID:       r.ClientID,
		ClientName:     r.Client.Name,
		ClientEmail:    r.Client.Email,
		ScheduledAt:    r.ScheduledAt,
		PackageID:      r.PackageID,
		PackageName:    r.PackageName,
		SubPackageID:   r.SubPackageID,
		SubPackageName: r.SubPackageName,
		Participants:   r.Participants,
		Price: queries.PriceBreakdownView{
			BasePrice:       r.Price.BasePrice,
			Subtotal:        r.Price.Subtotal,
			DiscountAmount:  r.Price.DiscountAmount,
			DiscountReason:  string(r.Price.DiscountReason),
			ReferralCode:    r.Price.ReferralCode,
			ReferralApplied: r.Price.ReferralApplied,
			PointsRedeemed:  r.Price.PointsRedeemed,
			FinalPrice:      r.Price.FinalPrice,
		},
		Status:           r.Status.String(),
		PaymentStatus:    r.PaymentStatus.String(),
		AmountPaid:       r.AmountPaid,
		RemainingBalance: r.Price.FinalPrice - r.AmountPaid,
		PaymentProofURL:  r.ProofURL,
		DeliveryLink:     r.DeliveryLink,
		RequestedAt:      r.RequestedAt,
		CompletedAt:      r.CompletedAt,
	}
}

func bookingRecord(b *booking.Booking) booking.Record {
	return booking.Record{
		ID:             b.ID(),
		Code:           b.Code().String(),
		ClientID:       b.ClientID(),
		Client:         b.Client(),
		ScheduledAt:    b.ScheduledAt(),
		PackageID:      b.PackageID(),
		PackageName:    b.PackageName(),
		SubPackageID:   b.SubPackageID(),
		SubPackageName: b.SubPackageName(),
		AddOns:         b.AddOns(),
		Participants:   b.Participants(),
		Price:          b.Price(),
		Status:         b.Status(),
		PaymentStatus:  b.PaymentStatus(),
		AmountPaid:     b.AmountPaid(),
		ProofBlobID:    b.ProofBlobID(),
		ProofURL:       b.ProofURL(),
		DeliveryLink:   b.DeliveryLink(),
		RequestedAt:    b.RequestedAt(),
		RescheduleNote: b.RescheduleNote(),
		CancelReason:   b.CancelReason(),
		Notes:          b.Notes(),
		CompletedAt:    b.CompletedAt(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

func clientRecord(c *client.Client) client.Record {
	return client.Record{
		ID:            c.ID(),
		Email:         c.Email(),
		Name:          c.Name(),
		Phone:         c.Phone(),
		TotalBookings: c.TotalBookings(),
		TotalSpent:    c.TotalSpent(),
		Points:        c.Points(),
		TierName:      c.TierName(),
		ReferralCode:  c.ReferralCode(),
		ReferredBy:    c.ReferredBy(),
		LastBookingAt: c.LastBookingAt(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

type memTx struct {
	st    *memState
	store *memStore
}

func (t *memTx) Bookings() shared.BookingRepository         { return memBookings{t} }
func (t *memTx) Clients() shared.ClientRepository           { return memClients{t.st} }
func (t *memTx) Transactions() shared.TransactionRepository { return memLedger{t.st} }
func (t *memTx) Activity() shared.ActivityRepository        { return memActivity{t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository  { return memIdempotency{t.st} }
func (t *memTx) Settings() shared.SettingsRepository        { return memSettings{t.st} }
func (t *memTx) Users() shared.UserRepository               { return memUsers{t.st} }
func (t *memTx) PushSubscriptions() shared.PushSubscriptionRepository {
	return memPushSubs{t.st}
}
func (t *memTx) Reads() shared.CommandReads { return memReads{t.st} }
func (t *memTx) DB() sqlc.DBTX              { return nil }

type memReads struct{ st *memState }

func (r memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &u, nil
}

func (r memReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, notFound("user")
}

func (r memReads) SubPackageByID(_ context.Context, id uuid.UUID) (*shared.CatalogSnapshot, error) {
	s, ok := r.st.subPackages[id]
	if !ok {
		return nil, notFound("sub-package")
	}
	return &s, nil
}

func (r memReads) AddOnsByIDs(_ context.Context, ids []uuid.UUID) ([]shared.CatalogAddOn, error) {
	var found []shared.CatalogAddOn
	for _, id := range ids {
		if a, ok := r.st.addOns[id]; ok {
			found = append(found, a)
		}
	}
	return found, nil
}

func (r memReads) PromoByCode(_ context.Context, code string) (*pricing.Promo, error) {
	p, ok := r.st.promos[code]
	if !ok {
		return nil, notFound("promo")
	}
	return &p, nil
}

func (r memReads) LoyaltySettings(context.Context) (loyalty.Config, error) {
	if r.st.loyalty == nil {
		return loyalty.DefaultConfig(), nil
	}
	return *r.st.loyalty, nil
}

func (r memReads) ClientByEmailForUpdate(_ context.Context, email string) (*client.Client, error) {
	for _, c := range r.st.clients {
		if c.Email == email {
			return client.Reconstruct(c), nil
		}
	}
	return nil, notFound("client")
}

func (r memReads) ClientByReferralCode(_ context.Context, code string) (*client.Client, error) {
	for _, c := range r.st.clients {
		if c.ReferralCode == code {
			return client.Reconstruct(c), nil
		}
	}
	return nil, notFound("client")
}

func (r memReads) BookingByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return booking.Reconstruct(b), nil
}

func (r memReads) BookingByCodeForUpdate(_ context.Context, code string) (*booking.Booking, error) {
	for _, b := range r.st.bookings {
		if b.Code == code {
			return booking.Reconstruct(b), nil
		}
	}
	return nil, notFound("booking")
}

func (r memReads) IdempotencyByKey(_ context.Context, key uuid.UUID, _ string) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idempotency[key]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

type memBookings struct{ t *memTx }

func (r memBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.t.store.failBookingCreate; err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	r.t.st.bookings[b.ID()] = bookingRecord(b)
	return nil
}

func (r memBookings) Update(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if _, ok := r.t.st.bookings[b.ID()]; !ok {
		return notFound("booking")
	}
	r.t.st.bookings[b.ID()] = bookingRecord(b)
	return nil
}

type memClients struct{ st *memState }

func (r memClients) Create(_ context.Context, _ sqlc.DBTX, c *client.Client) error {
	r.st.clients[c.ID()] = clientRecord(c)
	return nil
}

func (r memClients) SaveProfile(_ context.Context, _ sqlc.DBTX, c *client.Client) error {
	r.st.clients[c.ID()] = clientRecord(c)
	return nil
}

func (r memClients) ApplySettlement(_ context.Context, _ sqlc.DBTX, clientID uuid.UUID, d loyalty.ClientDelta) error {
	rec, ok := r.st.clients[clientID]
	if !ok {
		return notFound("client")
	}
	c := client.Reconstruct(rec)
	c.ApplySettlement(d)
	r.st.clients[clientID] = clientRecord(c)
	return nil
}

func (r memClients) CreditReferrer(_ context.Context, _ sqlc.DBTX, referralCode string, points int64, at time.Time) (bool, error) {
	for id, rec := range r.st.clients {
		if rec.ReferralCode == referralCode {
			rec.Points += points
			rec.UpdatedAt = at
			r.st.clients[id] = rec
			return true, nil
		}
	}
	return false, nil
}

type memLedger struct{ st *memState }

func (r memLedger) Append(_ context.Context, _ sqlc.DBTX, t *ledger.Transaction) error {
	r.st.ledger = append(r.st.ledger, t)
	return nil
}

type memActivity struct{ st *memState }

func (r memActivity) Append(_ context.Context, _ sqlc.DBTX, entry shared.ActivityEntry) error {
	r.st.activity = append(r.st.activity, entry)
	return nil
}

type memIdempotency struct{ st *memState }

func (r memIdempotency) TryInsert(_ context.Context, _ sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	if _, exists := r.st.idempotency[key]; exists {
		return false, nil
	}
	r.st.idempotency[key] = shared.IdempotencyRecord{
		Key:         key,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r memIdempotency) ClaimExpired(_ context.Context, _ sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	if _, exists := r.st.idempotency[key]; !exists {
		return false, nil
	}
	r.st.idempotency[key] = shared.IdempotencyRecord{
		Key:         key,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r memIdempotency) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key uuid.UUID, _, _ string, bookingID uuid.UUID) error {
	rec, ok := r.st.idempotency[key]
	if !ok {
		return notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.st.idempotency[key] = rec
	return nil
}

func (r memIdempotency) Release(_ context.Context, _ sqlc.DBTX, key uuid.UUID, _ string) error {
	if rec, ok := r.st.idempotency[key]; ok && rec.Status == shared.IdempotencyProcessing {
		delete(r.st.idempotency, key)
	}
	return nil
}

type memSettings struct{ st *memState }

func (r memSettings) SaveLoyalty(_ context.Context, _ sqlc.DBTX, cfg loyalty.Config) error {
	r.st.loyalty = &cfg
	return nil
}

type memUsers struct{ st *memState }

func (r memUsers) UpdateLastLogin(context.Context, sqlc.DBTX, uuid.UUID) error {
	return nil
}

func (r memUsers) Create(_ context.Context, _ sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error) {
	id := uuid.New()
	r.st.users[id] = shared.UserSnapshot{ID: id, Email: params.Email, Name: params.Name, IsActive: true}
	return id, nil
}

type memPushSubs struct{ st *memState }

func (r memPushSubs) Upsert(_ context.Context, _ sqlc.DBTX, sub shared.PushSubscription) error {
	r.st.pushSubs[sub.Endpoint] = sub
	return nil
}

func (r memPushSubs) DeleteByEndpoint(_ context.Context, _ sqlc.DBTX, endpoint string) (bool, error) {
	if _, ok := r.st.pushSubs[endpoint]; !ok {
		return false, nil
	}
	delete(r.st.pushSubs, endpoint)
	return true, nil
}

type memBlobs struct {
	mu      sync.Mutex
	blobs   map[uuid.UUID][]byte
	deleted []uuid.UUID
	putErr  error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{blobs: map[uuid.UUID][]byte{}}
}

func (b *memBlobs) Put(_ context.Context, _, _ string, data []byte) (shared.StoredBlob, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.putErr != nil {
		return shared.StoredBlob{}, b.putErr
	}
	id := uuid.New()
	b.blobs[id] = data
	return shared.StoredBlob{ID: id, URL: "/files/" + id.String()}, nil
}

func (b *memBlobs) Delete(_ context.Context, id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.blobs, id)
	b.deleted = append(b.deleted, id)
	return nil
}

func (b *memBlobs) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.blobs)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []shared.BookingEvent
}

func (n *recordingNotifier) Notify(_ context.Context, ev shared.BookingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) types() []shared.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]shared.EventType, len(n.events))
	for i, ev := range n.events {
		out[i] = ev.Type
	}
	return out
}
