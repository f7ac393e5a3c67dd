package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetBlockchainTransaction(id int) (models.BlockchainTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockchainTransactions.get(id)
}

func (s *Store) GetBlockchainTransactionByHash(hash string) (models.BlockchainTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockchainTransactions.find(func(tx models.BlockchainTransaction) bool {
		return tx.TransactionHash == hash
	})
}

func (s *Store) CreateBlockchainTransaction(in models.InsertBlockchainTransaction) models.BlockchainTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockchainTransactions.insert(func(id int) models.BlockchainTransaction {
		return models.BlockchainTransaction{
			ID:               id,
			TransactionType:  in.TransactionType,
			TransactionHash:  in.TransactionHash,
			BlockNumber:      in.BlockNumber,
			VoterID:          in.VoterID,
			PollingStationID: in.PollingStationID,
			Timestamp:        s.now(),
			Metadata:         in.Metadata,
			Verified:         false,
		}
	})
}

func (s *Store) GetAllBlockchainTransactions() []models.BlockchainTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockchainTransactions.all()
}

// VerifyBlockchainTransaction marks the record verified. The ledger
// itself is simulated; no chain is consulted.
func (s *Store) VerifyBlockchainTransaction(id int) (models.BlockchainTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.blockchainTransactions.get(id)
	if !ok {
		return models.BlockchainTransaction{}, fmt.Errorf("blockchain transaction %d: %w", id, ErrNotFound)
	}

	tx.Verified = true
	s.blockchainTransactions.put(id, tx)
	return tx, nil
}

func (s *Store) GetVoterTransactions(voterID int) []models.BlockchainTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockchainTransactions.filter(func(tx models.BlockchainTransaction) bool {
		return tx.VoterID != nil && *tx.VoterID == voterID
	})
}
