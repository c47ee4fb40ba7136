package storage

import (
	"path/filepath"
	"testing"

	"github.com/mhoffert/refstyle/internal/reference"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "refs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord(t *testing.T, key string) *reference.Record {
	t.Helper()
	rec := &reference.Record{
		Key:     key,
		Type:    "article",
		Year:    "1984",
		Journal: "The Computer Journal",
		DOI:     "10.1093/comjnl/27.2.97",
	}
	if err := rec.SetAuthors("Knuth, Donald E."); err != nil {
		t.Fatal(err)
	}
	rec.SetTitle("Literate Programming")
	return rec
}

func TestUpsertAndGet(t *testing.T) {
	db := testDB(t)
	rec := testRecord(t, "Knuth1984")

	if err := db.Upsert(rec.Key, rec); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetByKey("Knuth1984")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("record not found after upsert")
	}
	if got.Title != rec.Title || got.Year != rec.Year || got.Journal != rec.Journal {
		t.Errorf("scalar fields mismatch: %+v", got)
	}
	if got.Authors == nil || got.Authors.First().Lastname != "Knuth" {
		t.Error("authors not reconstructed from stored field")
	}
	if got.ShortTitle != rec.ShortTitle {
		t.Errorf("ShortTitle = %q, want %q", got.ShortTitle, rec.ShortTitle)
	}
}

func TestUpsertReplaces(t *testing.T) {
	db := testDB(t)
	rec := testRecord(t, "Knuth1984")

	if err := db.Upsert(rec.Key, rec); err != nil {
		t.Fatal(err)
	}
	rec.Year = "1992"
	if err := db.Upsert(rec.Key, rec); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetByKey("Knuth1984")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year != "1992" {
		t.Errorf("Year = %q after replace", got.Year)
	}

	n, err := db.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestGetMissing(t *testing.T) {
	db := testDB(t)

	got, err := db.GetByKey("nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("missing key should return nil, nil")
	}
}

func TestManualShortTitleRoundTrip(t *testing.T) {
	db := testDB(t)
	rec := testRecord(t, "Knuth1984")
	rec.SetShortTitle("TAOCP")

	if err := db.Upsert(rec.Key, rec); err != nil {
		t.Fatal(err)
	}
	got, err := db.GetByKey(rec.Key)
	if err != nil {
		t.Fatal(err)
	}
	if !got.ShortTitleManual || got.ShortTitle != "TAOCP" {
		t.Errorf("manual short title lost: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	db := testDB(t)
	rec := testRecord(t, "Knuth1984")

	if err := db.Upsert(rec.Key, rec); err != nil {
		t.Fatal(err)
	}
	if err := db.Delete(rec.Key); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetByKey(rec.Key)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("record still present after delete")
	}
}

func TestListOrderedByKey(t *testing.T) {
	db := testDB(t)
	for _, key := range []string{"Zuse1941", "Babbage1837", "Knuth1984"} {
		rec := testRecord(t, key)
		if err := db.Upsert(key, rec); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := db.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Babbage1837", "Knuth1984", "Zuse1941"}
	if len(recs) != len(want) {
		t.Fatalf("got %d records", len(recs))
	}
	for i, w := range want {
		if recs[i].Key != w {
			t.Errorf("recs[%d].Key = %q, want %q", i, recs[i].Key, w)
		}
	}
}

func TestSearch(t *testing.T) {
	db := testDB(t)
	rec := testRecord(t, "Knuth1984")
	if err := db.Upsert(rec.Key, rec); err != nil {
		t.Fatal(err)
	}

	byTitle, err := db.Search("literate")
	if err != nil {
		t.Fatal(err)
	}
	if len(byTitle) != 1 {
		t.Errorf("title search found %d", len(byTitle))
	}

	byAuthor, err := db.Search("knuth")
	if err != nil {
		t.Fatal(err)
	}
	if len(byAuthor) != 1 {
		t.Errorf("author search found %d", len(byAuthor))
	}

	none, err := db.Search("dijkstra")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("search should find nothing, got %d", len(none))
	}
}

func TestGetByDOI(t *testing.T) {
	db := testDB(t)
	rec := testRecord(t, "Knuth1984")
	if err := db.Upsert(rec.Key, rec); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetByDOI("10.1093/comjnl/27.2.97")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Key != "Knuth1984" {
		t.Errorf("GetByDOI = %+v", got)
	}
}
