package qualifier

import (
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatrixArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	for i, s := range []string{
		`\M`,
		`\M0`,
		`\M0 0`,
		`\M0 0 0`,
		`\M0 0 0 0`,
		`\M0 0 0 0 0`,
		`\M0 0 0 0 0 0 0`,
	} {
		if _, err := Parse(s, false); err == nil {
			t.Errorf("(%d) expected %q to be rejected, wasn't", i, s)
		}
	}
	if _, err := Parse(`\M0 0 0 0 0 0`, false); err != nil {
		t.Errorf("expected 6 components to parse, got %v", err)
	}
}

func TestMatrixRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	if _, err := Parse(`\M-65536 0 0 -65536 0 -1`, false); err != nil {
		t.Errorf("expected negative components to parse, got %v", err)
	}
	if _, err := Parse(`\M2147483648 0 0 -1 0 -1`, false); err == nil {
		t.Errorf("expected component 2^31 to be rejected, wasn't")
	}
	if _, err := Parse(`\M-2147483648 0 0 -1 0 -1`, false); err == nil {
		t.Errorf("expected component -2^31 to be rejected, wasn't")
	}
	if _, err := Parse(`\M0 0 x 0 0 0`, false); err == nil {
		t.Errorf("expected non-numeric component to be rejected, wasn't")
	}
}

func TestMatrixFractions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse(`\M32768 16384 131072 98304 1000 500`, false)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := qs.Matrix()
	if !ok {
		t.Fatalf("expected a matrix to be present, isn't")
	}
	if m != (Matrix{0.5, 0.25, 2, 1.5, 1, 0.5}) {
		t.Errorf("expected matrix [0.5 0.25 2 1.5 1 0.5], is %s", m)
	}
}

func TestMatrixTrailingSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	// classic FontManager accepts a matrix without the final space
	if _, err := Parse(`\M0 0 0 0 0 0`, false); err != nil {
		t.Errorf("expected lenient mode to accept matrix, got %v", err)
	}
	// the PRM requires it
	if _, err := Parse(`\M0 0 0 0 0 0`, true); err == nil {
		t.Errorf("expected strict mode to reject matrix without trailing space, didn't")
	}
	if _, err := Parse(`\M0 0 0 0 0 0 `, true); err != nil {
		t.Errorf("expected strict mode to accept matrix with trailing space, got %v", err)
	}
}

func TestMatrixApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	m := Matrix{0, 1, -1, 0, 0.5, 0} // rotate 90° and shift x by half an em
	p := m.Apply(arithm.P(1, 0))
	if p != arithm.P(0.5, 1) {
		t.Errorf("expected (1,0) to transform to (0.5,1), is %v", p)
	}
	if !Identity.IsIdentity() {
		t.Errorf("expected identity matrix to report itself as such")
	}
}
