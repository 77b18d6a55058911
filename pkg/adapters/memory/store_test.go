package memory_test

import (
	"testing"

	"github.com/aretw0/polish/pkg/adapters/memory"
	"github.com/aretw0/polish/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	tests.RunAnalysisStoreContract(t, memory.NewStore())
}
