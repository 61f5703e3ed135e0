package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mkuran/wordseal/internal/audit"
	"github.com/mkuran/wordseal/internal/code"
	"github.com/mkuran/wordseal/internal/core"
	"github.com/mkuran/wordseal/internal/counter"
	"github.com/mkuran/wordseal/internal/oracle"
)

func newTestService(t *testing.T) (*CodeService, *audit.InMemoryAuditor) {
	t.Helper()
	orc, err := oracle.NewHMACFromConfig("test", map[string]any{"secret": "shared-secret"})
	if err != nil {
		t.Fatalf("building oracle: %v", err)
	}
	auditor := audit.NewInMemoryAuditor()
	svc := NewCodeService(
		counter.NewMemoryCounter(),
		code.NewGenerator(orc),
		code.NewValidator(orc, 24, 1),
		auditor,
	)
	return svc, auditor
}

func TestCodeService_IssueThenValidate(t *testing.T) {
	svc, auditor := newTestService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if issued.Artifact.KeyID != 0 {
		t.Errorf("first key id = %d, want 0", issued.Artifact.KeyID)
	}

	result, err := svc.Validate(ctx, ValidateRequest{Words: issued.Artifact.Words})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	verdict := result.Verdict
	if !verdict.Valid || verdict.KeyID != issued.Artifact.KeyID || verdict.AgeHours != 0 {
		t.Errorf("Validate() = %+v, want valid key id %d at age 0", verdict, issued.Artifact.KeyID)
	}

	// each issuance allocates a distinct key id
	second, err := svc.Issue(ctx)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if second.Artifact.KeyID != 1 {
		t.Errorf("second key id = %d, want 1", second.Artifact.KeyID)
	}

	entries, err := auditor.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("audit entries = %d, want 3", len(entries))
	}
	if entries[0].Action != "code.issue" || !entries[0].Granted {
		t.Errorf("first audit entry = %+v", entries[0])
	}
	if entries[1].Action != "code.validate" || !entries[1].Granted {
		t.Errorf("second audit entry = %+v", entries[1])
	}
}

func TestCodeService_RejectsForeignCode(t *testing.T) {
	svc, auditor := newTestService(t)

	result, err := svc.Validate(context.Background(), ValidateRequest{
		Words: "word0001 word0002 word0003 word0004 word0005 word0006 word0007 word0008 word0009 word0010",
	})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Verdict.Valid || result.Verdict.Reason != core.ReasonBadSignature {
		t.Errorf("Validate() = %+v, want bad_signature", result.Verdict)
	}

	entries, _ := auditor.GetRecent(1)
	if len(entries) != 1 || entries[0].Granted {
		t.Errorf("rejection was not audited: %+v", entries)
	}
}

// exhaustedCounter simulates a day on which all 1024 key ids are used up.
type exhaustedCounter struct{}

func (exhaustedCounter) NextValue(context.Context, string) (int, error) {
	return 1024, nil
}

func TestCodeService_CounterExhaustion(t *testing.T) {
	orc, err := oracle.NewHMACFromConfig("test", map[string]any{"secret": "shared-secret"})
	if err != nil {
		t.Fatalf("building oracle: %v", err)
	}
	svc := NewCodeService(
		exhaustedCounter{},
		code.NewGenerator(orc),
		code.NewValidator(orc, 24, 1),
		audit.NewNoopAuditor(),
	)

	_, err = svc.Issue(context.Background())
	if err == nil {
		t.Fatal("Issue() should fail when the counter is exhausted")
	}
	if !errors.Is(err, core.ErrKeyRange) {
		t.Errorf("Issue() error = %v, want ErrKeyRange", err)
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Issue() error = %v, want HTTP 503", err)
	}
}

// brokenOracle fails every MAC request.
type brokenOracle struct{}

func (brokenOracle) Name() string { return "broken" }

func (brokenOracle) GenerateMAC(context.Context, []byte) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestCodeService_OracleDownMapsToBadGateway(t *testing.T) {
	svc := NewCodeService(
		counter.NewMemoryCounter(),
		code.NewGenerator(brokenOracle{}),
		code.NewValidator(brokenOracle{}, 24, 1),
		audit.NewNoopAuditor(),
	)
	ctx := context.Background()

	_, err := svc.Issue(ctx)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Issue() error = %v, want HTTP 502", err)
	}

	_, err = svc.Validate(ctx, ValidateRequest{
		Words: "word0001 word0002 word0003 word0004 word0005 word0006 word0007 word0008 word0009 word0010",
	})
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Validate() error = %v, want HTTP 502", err)
	}
}
