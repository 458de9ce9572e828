package gctable

import (
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/codonmark/codonmark/errs"
)

// TablesBucket is the bbolt bucket holding cached tables.
var TablesBucket = []byte("tables")

// storedTable is the database record of a table.
type storedTable struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Table json.RawMessage `json:"table"`
}

// Bolt is a persistent table cache in a bbolt database. Tables missing
// from the database are loaded from the underlying provider and
// saved.
type Bolt struct {
	db *bolt.DB
	p  Provider
}

// NewBolt creates a persistent cache in db in front of p.
func NewBolt(db *bolt.DB, p Provider) *Bolt {
	return &Bolt{db: db, p: p}
}

// Load returns the table for id from the database, or from the
// underlying provider if it is not stored yet.
func (b *Bolt) Load(id int) (*Table, error) {
	key := []byte(strconv.Itoa(id))
	data, err := LoadData(b.db, key)
	if err != nil {
		return nil, err
	}
	if data != nil {
		var st storedTable
		if err = json.Unmarshal(data, &st); err != nil {
			return nil, errs.Wrap(errs.Unresolvable, "gctable.Bolt", err, "stored table %d", id)
		}
		log.Debugf("Genetic code %d found in the table database", id)
		return ParseTable(st.ID, st.Name, st.Table)
	}

	t, err := b.p.Load(id)
	if err != nil {
		return nil, err
	}
	if err = b.Save(t); err != nil {
		// The table is still usable.
		log.Warningf("Error saving genetic code %d: %v", id, err)
	}
	return t, nil
}

// Save stores a table in the database.
func (b *Bolt) Save(t *Table) error {
	tb, err := json.Marshal(t)
	if err != nil {
		return err
	}
	data, err := json.Marshal(storedTable{ID: t.ID, Name: t.Name, Table: tb})
	if err != nil {
		return err
	}
	return SaveData(b.db, []byte(strconv.Itoa(t.ID)), data)
}

// IDs lists the ids of the underlying provider.
func (b *Bolt) IDs() []int {
	return IDs(b.p)
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(TablesBucket)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads data from bolt database. A missing bucket or key
// gives nil data and no error.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(TablesBucket)
		if b == nil {
			return nil
		}
		// v is only valid during the transaction.
		if v := b.Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
