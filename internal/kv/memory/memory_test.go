package memory

import (
	"testing"

	"github.com/studykeep/studykeep/internal/kv"
	"github.com/studykeep/studykeep/internal/kv/kvtest"
)

func TestMemoryStore_Compliance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store { return New() })
}
