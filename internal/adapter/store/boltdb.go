package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"tfidf/internal/adapter/memstore"
	"tfidf/internal/domain"
)

var (
	bucketDocs = []byte("docs")
	bucketMeta = []byte("meta")
	keyOrder   = []byte("doc_order")
)

// BoltStore persists a fully ingested corpus between CLI runs so
// extraction does not re-tokenize the whole tree. It is a snapshot of
// the batch accumulator, not an incremental index: Save writes the
// complete statistics, Load rebuilds them.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// docSnapshot is the stored form of one document's statistics.
type docSnapshot struct {
	Total int               `json:"total"`
	Terms []domain.TermStat `json:"terms"`
}

// Save replaces the stored snapshot with the given corpus.
func (s *BoltStore) Save(c *memstore.Corpus) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketDocs); err != nil {
			return err
		}
		docs, err := tx.CreateBucket(bucketDocs)
		if err != nil {
			return err
		}

		order := c.Documents()
		for _, docID := range order {
			snap := docSnapshot{
				Total: c.DocumentLength(docID),
				Terms: c.DocumentTerms(docID),
			}
			data, err := json.Marshal(snap)
			if err != nil {
				return err
			}
			if err := docs.Put([]byte(docID), data); err != nil {
				return err
			}
		}

		orderData, err := json.Marshal(order)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyOrder, orderData)
	})
}

// Load rebuilds the corpus statistics from the snapshot. An empty
// database yields an empty corpus, not an error.
func (s *BoltStore) Load() (*memstore.Corpus, error) {
	corpus := memstore.NewCorpus()

	err := s.db.View(func(tx *bbolt.Tx) error {
		var order []string
		if data := tx.Bucket(bucketMeta).Get(keyOrder); data != nil {
			if err := json.Unmarshal(data, &order); err != nil {
				return err
			}
		}

		docs := tx.Bucket(bucketDocs)
		for _, docID := range order {
			data := docs.Get([]byte(docID))
			if data == nil {
				return fmt.Errorf("snapshot doc %s: %w", docID, domain.ErrDocumentNotFound)
			}
			var snap docSnapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return err
			}
			corpus.RestoreDocument(docID, snap.Total, snap.Terms)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return corpus, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
