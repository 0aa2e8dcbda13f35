package matrixdb

import (
	bolt "go.etcd.io/bbolt"
)

// MATRICES is the bucket name for all stored matrices.
var MATRICES = []byte("matrices")

// BoltStore is a writable named-matrix database backed by a bolt file.
// It satisfies Resolver, so it can be used wherever the embedded
// database is.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (or creates) a matrix store at the given path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0644, nil)
	if err != nil {
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Put stores matrix text under a name, replacing any previous entry.
func (s *BoltStore) Put(name, text string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MATRICES)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), []byte(text))
	})
	if err != nil {
		log.Error("Error storing matrix: ", err)
	}
	return err
}

// Read returns the matrix text stored under a name.
func (s *BoltStore) Read(name string) (string, error) {
	var text []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MATRICES)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(name))
		if v != nil {
			text = make([]byte, len(v))
			copy(text, v)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if text == nil {
		return "", &UnknownMatrixError{Name: name}
	}
	return string(text), nil
}

// List returns the names of all stored matrices in key order.
func (s *BoltStore) List() (names []string, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MATRICES)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
