package openapiv3

import "testing"

func TestVersion(t *testing.T) {
	if Version() != "dev" {
		t.Errorf("expected 'dev' for source builds, got %q", Version())
	}
}
