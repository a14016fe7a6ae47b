package recon

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/edubaze/paystack-recon-service/internal/domain"
	publisher "github.com/edubaze/paystack-recon-service/internal/infrastructure/kafka"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/metrics"
	recondto "github.com/edubaze/paystack-recon-service/internal/usecase/dto/recon"
)

// promauto registers against the default registry, so the package shares one
// metrics instance across tests.
var testMetrics = metrics.NewReconMetrics()

type fakeLedger struct {
	mu      sync.Mutex
	entries map[string]*domain.LedgerEntry
	calls   int
	err     error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{entries: make(map[string]*domain.LedgerEntry)}
}

func (f *fakeLedger) CreateIfAbsent(ctx context.Context, entry *domain.LedgerEntry) (bool, *domain.LedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return false, nil, f.err
	}
	if existing, ok := f.entries[entry.Reference]; ok {
		return false, existing, nil
	}
	f.entries[entry.Reference] = entry
	return true, entry, nil
}

func (f *fakeLedger) GetByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.entries[reference]; ok {
		return existing, nil
	}
	return nil, domain.ErrMissingAssociatedDocument
}

type settleCall struct {
	paymentRequest string
	refDoctype     string
	refDocname     string
}

type fakeDocuments struct {
	mu          sync.Mutex
	settings    *domain.GatewaySettings
	settingsErr error
	order       *domain.SalesOrder
	orderErr    error
	settleErr   error
	settleCalls []settleCall
}

func (f *fakeDocuments) GetPaymentRequest(ctx context.Context, name string) (*domain.PaymentRequest, error) {
	return nil, errors.New("not used")
}

func (f *fakeDocuments) GetIntegrationRequest(ctx context.Context, refDoctype, refDocname string) (*domain.IntegrationRequest, error) {
	return nil, errors.New("not used")
}

func (f *fakeDocuments) GetSalesOrder(ctx context.Context, name string) (*domain.SalesOrder, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.order, nil
}

func (f *fakeDocuments) GetGatewaySettings(ctx context.Context, gateway string) (*domain.GatewaySettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return f.settings, nil
}

func (f *fakeDocuments) SettlePayment(ctx context.Context, paymentRequestName, refDoctype, refDocname string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settleErr != nil {
		return f.settleErr
	}
	f.settleCalls = append(f.settleCalls, settleCall{paymentRequestName, refDoctype, refDocname})
	return nil
}

func (f *fakeDocuments) settled() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.settleCalls)
}

type fakeCatalog struct {
	provisions []domain.CourseProvision
}

func (f *fakeCatalog) ListCourseProvisions(ctx context.Context) ([]domain.CourseProvision, error) {
	return f.provisions, nil
}

type fakeGateway struct {
	result *domain.VerificationResult
	err    error
	calls  int
}

func (f *fakeGateway) Verify(ctx context.Context, reference, secretKey string) (*domain.VerificationResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []domain.EnrollmentMail
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, mail domain.EnrollmentMail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mail)
	return nil
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publisher.PaymentEvent
}

func (f *fakePublisher) PublishPayment(event publisher.PaymentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func successResult(reference string) *domain.VerificationResult {
	return &domain.VerificationResult{
		Reference:     reference,
		Status:        domain.TxStatusSuccess,
		AmountMinor:   150000,
		Currency:      "NGN",
		Message:       "Verification successful",
		TransactionID: 4099260516,
		Metadata: domain.TransactionMetadata{
			Gateway:          "Paystack",
			Doctype:          "Payment Request",
			Docname:          "PR-0001",
			ReferenceDoctype: "Sales Order",
			ReferenceName:    "SO-0001",
		},
		RawPayload: `{"status": true}`,
	}
}

type fixture struct {
	usecase   *DefaultReconUsecase
	ledger    *fakeLedger
	documents *fakeDocuments
	gateway   *fakeGateway
	mailer    *fakeMailer
}

func newFixture(result *domain.VerificationResult) *fixture {
	ledger := newFakeLedger()
	documents := &fakeDocuments{
		settings: &domain.GatewaySettings{Name: "Paystack", SecretKey: "sk_test_xyz", PublicKey: "pk_test_xyz"},
		order: &domain.SalesOrder{
			Name:         "SO-0001",
			CustomerName: "Ada",
			ContactEmail: "ada@example.com",
			Items:        []domain.OrderLineItem{{ItemCode: "COURSE-A", Qty: 1}},
		},
	}
	gateway := &fakeGateway{result: result}
	mail := &fakeMailer{}

	uc := NewDefaultReconUsecase(
		ledger,
		documents,
		&fakeCatalog{provisions: []domain.CourseProvision{
			{Item: "COURSE-A", EnrollmentKey: "K1", CourseLink: "https://moodle.example.com/a"},
		}},
		gateway,
		mail,
		&fakePublisher{},
		testMetrics,
	)
	return &fixture{usecase: uc, ledger: ledger, documents: documents, gateway: gateway, mailer: mail}
}

func reconcileInput(reference string) *recondto.ReconcileInput {
	return &recondto.ReconcileInput{Reference: reference, Gateway: "Paystack"}
}

func TestReconcileFirstDelivery(t *testing.T) {
	f := newFixture(successResult("ref-first"))

	out, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Created {
		t.Fatal("expected ledger entry to be created")
	}
	if out.Entry.Amount != 1500.00 {
		t.Errorf("expected amount 1500.00 from 150000 minor units, got %v", out.Entry.Amount)
	}
	if out.Entry.Currency != "NGN" {
		t.Errorf("unexpected currency %q", out.Entry.Currency)
	}
	if got := f.documents.settled(); got != 1 {
		t.Fatalf("expected exactly one settlement, got %d", got)
	}
	call := f.documents.settleCalls[0]
	if call.paymentRequest != "PR-0001" || call.refDoctype != "Payment Request" || call.refDocname != "PR-0001" {
		t.Errorf("unexpected settlement call %+v", call)
	}
	if !out.MailSent || f.mailer.sentCount() != 1 {
		t.Errorf("expected one enrollment mail, sent=%v count=%d", out.MailSent, f.mailer.sentCount())
	}
}

func TestReconcileIdempotent(t *testing.T) {
	f := newFixture(successResult("ref-dup"))

	for i := 0; i < 3; i++ {
		out, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-dup"))
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if i == 0 && !out.Created {
			t.Fatal("first call should create the entry")
		}
		if i > 0 && out.Created {
			t.Fatalf("call %d should be a no-op", i)
		}
	}

	if got := f.documents.settled(); got != 1 {
		t.Errorf("expected exactly one settlement across deliveries, got %d", got)
	}
	if got := f.mailer.sentCount(); got != 1 {
		t.Errorf("expected exactly one enrollment mail across deliveries, got %d", got)
	}
}

func TestReconcileConcurrentDeliveries(t *testing.T) {
	f := newFixture(successResult("ref-race"))

	var wg sync.WaitGroup
	createdCount := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-race"))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			createdCount <- out.Created
		}()
	}
	wg.Wait()
	close(createdCount)

	winners := 0
	for created := range createdCount {
		if created {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("expected exactly one winner, got %d", winners)
	}
	if got := f.documents.settled(); got != 1 {
		t.Errorf("expected exactly one settlement, got %d", got)
	}
	if got := f.mailer.sentCount(); got != 1 {
		t.Errorf("expected exactly one enrollment mail, got %d", got)
	}
}

func TestReconcileGatewayFailureWritesNothing(t *testing.T) {
	f := newFixture(nil)
	f.gateway.err = fmt.Errorf("%w: status 502", domain.ErrGateway)

	_, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-down"))
	if !errors.Is(err, domain.ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
	if f.ledger.calls != 0 {
		t.Errorf("expected no ledger write on gateway failure, got %d calls", f.ledger.calls)
	}
	if f.documents.settled() != 0 {
		t.Error("expected no settlement on gateway failure")
	}
	if f.mailer.sentCount() != 0 {
		t.Error("expected no mail on gateway failure")
	}
}

func TestReconcileFailedStatusSkipsFulfillment(t *testing.T) {
	result := successResult("ref-failed")
	result.Status = domain.TxStatusFailed
	f := newFixture(result)

	out, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-failed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Created {
		t.Fatal("failed transaction should still be recorded")
	}
	if f.documents.settled() != 1 {
		t.Error("expected settlement hook to run for a verified failed transaction")
	}
	if out.MailSent || f.mailer.sentCount() != 0 {
		t.Error("failed transaction must not trigger fulfillment")
	}
}

func TestReconcilePendingStatusSkipsFulfillment(t *testing.T) {
	result := successResult("ref-pending")
	result.Status = domain.TxStatusPending
	f := newFixture(result)

	out, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-pending"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Created {
		t.Fatal("pending transaction should still be recorded")
	}
	if out.MailSent || f.mailer.sentCount() != 0 {
		t.Error("pending transaction must not trigger fulfillment")
	}
}

func TestReconcileMissingDocumentAbortsBeforeFulfillment(t *testing.T) {
	f := newFixture(successResult("ref-orphan"))
	f.documents.settleErr = fmt.Errorf("payment request PR-0001: %w", domain.ErrMissingAssociatedDocument)

	_, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-orphan"))
	if !errors.Is(err, domain.ErrMissingAssociatedDocument) {
		t.Fatalf("expected ErrMissingAssociatedDocument, got %v", err)
	}
	if f.mailer.sentCount() != 0 {
		t.Error("fulfillment must be skipped when settlement fails")
	}
}

func TestReconcileMissingEmailIsNonFatal(t *testing.T) {
	f := newFixture(successResult("ref-noemail"))
	f.documents.order.ContactEmail = ""
	f.documents.order.CustomerEmail = ""

	out, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-noemail"))
	if err != nil {
		t.Fatalf("missing email must not fail reconciliation: %v", err)
	}
	if !out.Created {
		t.Fatal("expected ledger entry despite missing email")
	}
	if f.documents.settled() != 1 {
		t.Error("settlement must remain committed when fulfillment cannot notify")
	}
	if out.MailSent || f.mailer.sentCount() != 0 {
		t.Error("no mail should go out without a customer email")
	}
}

func TestReconcileEmailFallsBackToCustomerEmail(t *testing.T) {
	f := newFixture(successResult("ref-fallback"))
	f.documents.order.ContactEmail = ""
	f.documents.order.CustomerEmail = "fallback@example.com"

	out, err := f.usecase.Reconcile(context.Background(), reconcileInput("ref-fallback"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.MailSent {
		t.Fatal("expected mail via customer email fallback")
	}
	if got := f.mailer.sent[0].Recipient; got != "fallback@example.com" {
		t.Errorf("unexpected recipient %q", got)
	}
}
