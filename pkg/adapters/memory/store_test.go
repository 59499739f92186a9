package memory_test

import (
	"testing"

	"github.com/finitolabs/finito/pkg/adapters/memory"
	"github.com/finitolabs/finito/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunMachineStoreContract(t, store)
}
