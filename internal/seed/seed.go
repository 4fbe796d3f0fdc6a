// Package seed loads the demo fixture: a handful of members and items plus
// one standing contract, enough to exercise every part of the engine from a
// fresh process.
package seed

import (
	"fmt"

	"lendledger/internal/domain"
	"lendledger/internal/ledger"
)

// Loader populates a ledger service with an initial data set.
type Loader interface {
	Load(svc *ledger.Service) error
}

// Demo is the hardcoded sample data set.
type Demo struct{}

// Load creates Alice (500 credits after her bike is borrowed), Bob (100) and
// Moronica (70 after borrowing), three items, and one contract on the hammer
// for days [5, 7).
func (Demo) Load(svc *ledger.Service) error {
	alice, err := svc.CreateMember("Alice", "alice@example.com", "0701111111")
	if err != nil {
		return fmt.Errorf("seed alice: %w", err)
	}
	moronica, err := svc.CreateMember("Moronica Dracula Dextrose", "MDD@example.com", "0703333333")
	if err != nil {
		return fmt.Errorf("seed moronica: %w", err)
	}

	if _, err := svc.CreateItem(alice.ID, domain.CategoryVehicle, "I1", "A cool bike", 50); err != nil {
		return fmt.Errorf("seed item I1: %w", err)
	}
	hammer, err := svc.CreateItem(alice.ID, domain.CategoryTool, "I2", "A cheap, heavy hammer", 10)
	if err != nil {
		return fmt.Errorf("seed item I2: %w", err)
	}
	if _, err := svc.CreateItem(moronica.ID, domain.CategoryGame, "Halo", "Halo 2", 20); err != nil {
		return fmt.Errorf("seed item Halo: %w", err)
	}

	bob, err := svc.CreateMember("Bob", "bob@example.com", "0702222222")
	if err != nil {
		return fmt.Errorf("seed bob: %w", err)
	}
	if _, err := svc.SetCredits(bob.ID, 100); err != nil {
		return fmt.Errorf("seed bob credits: %w", err)
	}
	if _, err := svc.SetCredits(moronica.ID, 90); err != nil {
		return fmt.Errorf("seed moronica credits: %w", err)
	}
	if _, err := svc.SetCredits(alice.ID, 480); err != nil {
		return fmt.Errorf("seed alice credits: %w", err)
	}

	if _, err := svc.CreateContract(moronica.ID, hammer.ID, 5, 7); err != nil {
		return fmt.Errorf("seed contract: %w", err)
	}
	return nil
}
