// Package database
package database

import (
	"errors"
	"testing"
	"time"

	"github.com/mse-lab/labbook/internal/interfaces/global"
	. "github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/interfaces/store"
)

func newTestRecordOperation() (*RecordOperation, *memoryStore) {
	memStore := newMemoryStore()
	return NewRecordOperation(&testLogger{}, memStore, 5*time.Second), memStore
}

func validInput(name, testDate string) *RecordInput {
	return &RecordInput{
		TestDate:     testDate,
		StartTime:    "08:00",
		EndTime:      "10:00",
		Name:         name,
		Contact:      "12345",
		Advisor:      "prof. wang",
		Equipment:    "SEM",
		MachineHours: 2.0,
		Cost:         40,
	}
}

func TestSaveRecordInsertStampsTimestamps(t *testing.T) {
	recordOperation, _ := newTestRecordOperation()

	record, err := recordOperation.SaveRecord(validInput("alice", "2024-01-10"), nil)
	if err != nil {
		t.Fatalf("SaveRecord insert failed: %v", err)
	}
	if record.ID == 0 {
		t.Error("inserted record should receive a store-assigned id")
	}
	if record.RegisterDatetime == "" || record.CreatedDate == "" || record.LastModified == "" {
		t.Errorf("insert should stamp all timestamps, got %q / %q / %q",
			record.RegisterDatetime, record.CreatedDate, record.LastModified)
	}
	if record.TestTime != "08:00-10:00" {
		t.Errorf("TestTime = %q; expected composed display string", record.TestTime)
	}
}

func TestSaveRecordUpdatePreservesImmutableFields(t *testing.T) {
	recordOperation, _ := newTestRecordOperation()

	inserted, err := recordOperation.SaveRecord(validInput("alice", "2024-01-10"), nil)
	if err != nil {
		t.Fatalf("SaveRecord insert failed: %v", err)
	}

	edit := validInput("alice-edited", "2024-01-12")
	updated, err := recordOperation.SaveRecord(edit, &inserted.ID)
	if err != nil {
		t.Fatalf("SaveRecord update failed: %v", err)
	}
	if updated.ID != inserted.ID {
		t.Errorf("update changed id from %d to %d", inserted.ID, updated.ID)
	}
	if updated.RegisterDatetime != inserted.RegisterDatetime {
		t.Errorf("update changed register_datetime from %q to %q", inserted.RegisterDatetime, updated.RegisterDatetime)
	}
	if updated.CreatedDate != inserted.CreatedDate {
		t.Errorf("update changed created_at from %q to %q", inserted.CreatedDate, updated.CreatedDate)
	}
	if updated.Name != "alice-edited" || updated.TestDate != "2024-01-12" {
		t.Errorf("update did not apply mutable fields: %q / %q", updated.Name, updated.TestDate)
	}
	if updated.LastModified == "" {
		t.Error("update should stamp last_modified")
	}
}

func TestSaveRecordMissingFieldsWritesNothing(t *testing.T) {
	recordOperation, memStore := newTestRecordOperation()

	input := validInput("", "2024-01-10")
	if _, err := recordOperation.SaveRecord(input, nil); !IsMissingFields(err) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if count := memStore.rowCount(TableEntries); count != 0 {
		t.Errorf("store contains %d rows after rejected save; expected 0", count)
	}
}

func TestSaveRecordUpdateMissingRecord(t *testing.T) {
	recordOperation, _ := newTestRecordOperation()

	missingID := int64(42)
	if _, err := recordOperation.SaveRecord(validInput("alice", "2024-01-10"), &missingID); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestInsertGetDeleteScenario(t *testing.T) {
	recordOperation, _ := newTestRecordOperation()

	inserted, err := recordOperation.SaveRecord(validInput("bob", "2024-02-01"), nil)
	if err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	fetched, err := recordOperation.GetRecordByID(inserted.ID)
	if err != nil {
		t.Fatalf("GetRecordByID failed: %v", err)
	}
	if fetched.Name != "bob" || fetched.TestDate != "2024-02-01" {
		t.Errorf("fetched record mismatch: %q / %q", fetched.Name, fetched.TestDate)
	}

	if err := recordOperation.DeleteRecord(inserted.ID); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	if _, err := recordOperation.GetRecordByID(inserted.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

func TestGetRecordsLimitBounds(t *testing.T) {
	recordOperation, memStore := newTestRecordOperation()

	tests := []struct {
		requested int
		expected  int
	}{
		{0, global.DefaultQueryLimit},
		{-5, global.DefaultQueryLimit},
		{100, 100},
		{global.MaxQueryLimit, global.MaxQueryLimit},
		{10000, global.MaxQueryLimit},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		if _, err := recordOperation.GetRecords(&RecordQuery{Limit: test.requested}); err != nil {
			fail++
			t.Errorf("GetRecords(limit=%d) failed: %v", test.requested, err)
			continue
		}
		if memStore.lastLimit != test.expected {
			fail++
			t.Errorf("GetRecords(limit=%d) passed limit %d to the store; expected %d",
				test.requested, memStore.lastLimit, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestGetRecordsLimitBounds: %d pass, %d fail", pass, fail)
}

func TestGetRecordsDefaultOrderAndConditions(t *testing.T) {
	recordOperation, memStore := newTestRecordOperation()

	for _, name := range []string{"alice", "bob"} {
		if _, err := recordOperation.SaveRecord(validInput(name, "2024-01-10"), nil); err != nil {
			t.Fatalf("SaveRecord failed: %v", err)
		}
	}

	records, err := recordOperation.GetRecords(&RecordQuery{
		Conditions: map[string]string{"name": "alice", "advisor": "  "},
	})
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(records) != 1 || records[0].Name != "alice" {
		t.Errorf("equality condition on name returned %d records", len(records))
	}
	if memStore.lastOrder.Field != "test_date" || !memStore.lastOrder.Desc {
		t.Errorf("default order = %+v; expected test_date desc", memStore.lastOrder)
	}
}

func TestGetRecordsDateRangeInclusive(t *testing.T) {
	recordOperation, _ := newTestRecordOperation()

	dates := []string{"2024-01-09", "2024-01-10", "2024-01-15", "2024-01-20", "2024-01-21"}
	for _, date := range dates {
		if _, err := recordOperation.SaveRecord(validInput("alice", date), nil); err != nil {
			t.Fatalf("SaveRecord failed: %v", err)
		}
	}

	records, err := recordOperation.GetRecords(&RecordQuery{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-20",
		DateField: DateFieldTestDate,
	})
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("date range kept %d records; expected 3 (boundaries inclusive)", len(records))
	}
	for _, record := range records {
		if record.TestDate < "2024-01-10" || record.TestDate > "2024-01-20" {
			t.Errorf("record with test_date %q escaped the range filter", record.TestDate)
		}
	}
}

func TestGetRecordsDateRangeOnRegisterDatetime(t *testing.T) {
	recordOperation, memStore := newTestRecordOperation()

	if _, err := recordOperation.SaveRecord(validInput("alice", "2023-06-01"), nil); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}
	// register_datetime带时间戳, 过滤时应截取日期部分比较
	today := time.Now().Format(global.DateLayout)
	records, err := recordOperation.GetRecords(&RecordQuery{
		StartDate: today,
		EndDate:   today,
		DateField: DateFieldRegisterDatetime,
	})
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("register_datetime range kept %d records; expected 1", len(records))
	}

	// 无法解析日期的记录被丢弃
	memStore.mu.Lock()
	memStore.tables[TableEntries][0]["register_datetime"] = "garbage"
	memStore.mu.Unlock()
	records, err = recordOperation.GetRecords(&RecordQuery{
		StartDate: today,
		EndDate:   today,
		DateField: DateFieldRegisterDatetime,
	})
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("unparseable register_datetime kept %d records; expected 0", len(records))
	}
}

func TestBatchDeleteRecords(t *testing.T) {
	recordOperation, memStore := newTestRecordOperation()

	ids := make([]int64, 0, 3)
	for _, name := range []string{"a", "b", "c"} {
		record, err := recordOperation.SaveRecord(validInput(name, "2024-01-10"), nil)
		if err != nil {
			t.Fatalf("SaveRecord failed: %v", err)
		}
		ids = append(ids, record.ID)
	}

	deleted, err := recordOperation.BatchDeleteRecords(ids[:2])
	if err != nil {
		t.Fatalf("BatchDeleteRecords failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d; expected 2", deleted)
	}
	if count := memStore.rowCount(TableEntries); count != 1 {
		t.Errorf("store contains %d rows; expected 1", count)
	}

	memStore.failErr = errors.New("backend offline")
	if _, err := recordOperation.BatchDeleteRecords([]int64{ids[2]}); !errors.Is(err, ErrStoreFailure) {
		t.Errorf("expected ErrStoreFailure when no deletion succeeds, got %v", err)
	}
}

func TestGetRecordRowsProjection(t *testing.T) {
	recordOperation, memStore := newTestRecordOperation()

	inserted, err := recordOperation.SaveRecord(validInput("alice", "2024-01-10"), nil)
	if err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	// 人为注入缺主键的脏行, 投影时应跳过
	memStore.mu.Lock()
	memStore.tables[TableEntries] = append(memStore.tables[TableEntries], store.Row{
		"name": "ghost", "test_date": "2024-01-11", "equipment": "SEM",
	})
	memStore.mu.Unlock()

	rows, err := recordOperation.GetRecordRows(&RecordQuery{})
	if err != nil {
		t.Fatalf("GetRecordRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("projection returned %d rows; expected 1 (malformed row skipped)", len(rows))
	}

	row := rows[0]
	fields := row.Fields()
	if len(fields) != len(RecordRowHeader) {
		t.Fatalf("Fields() returned %d values; expected %d", len(fields), len(RecordRowHeader))
	}
	if fields[0] != "1" {
		t.Errorf("field 0 (id) = %q; expected %q", fields[0], "1")
	}
	if fields[2] != "2024-01-10" {
		t.Errorf("field 2 (test_date) = %q; expected %q", fields[2], "2024-01-10")
	}
	if fields[4] != "alice" {
		t.Errorf("field 4 (name) = %q; expected %q", fields[4], "alice")
	}
	if fields[7] != "SEM" {
		t.Errorf("field 7 (equipment) = %q; expected %q", fields[7], "SEM")
	}
	if fields[8] != "2" {
		t.Errorf("field 8 (machine_hours) = %q; expected %q", fields[8], "2")
	}
	if fields[9] != "40" {
		t.Errorf("field 9 (cost) = %q; expected %q", fields[9], "40")
	}
	if fields[1] != inserted.RegisterDatetime {
		t.Errorf("field 1 (register_datetime) = %q; expected %q", fields[1], inserted.RegisterDatetime)
	}
}

func TestSearchRecords(t *testing.T) {
	recordOperation, _ := newTestRecordOperation()

	first := validInput("alice", "2024-01-10")
	first.Remark = "low vacuum mode"
	second := validInput("bob", "2024-01-12")
	second.Advisor = "prof. li"
	second.Equipment = "XRD"
	for _, input := range []*RecordInput{first, second} {
		if _, err := recordOperation.SaveRecord(input, nil); err != nil {
			t.Fatalf("SaveRecord failed: %v", err)
		}
	}

	tests := []struct {
		name      string
		keywords  string
		advisor   string
		equipment string
		expected  int
	}{
		{"keyword over remark", "VACUUM", "", "", 1},
		{"keyword over name", "bob", "", "", 1},
		{"keyword no match", "nothing", "", "", 0},
		{"advisor equality", "", "prof. li", "", 1},
		{"equipment equality", "", "", "SEM", 1},
		{"advisor and keyword combined", "xrd", "prof. li", "", 1},
		{"empty search returns all", "", "", "", 2},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		records, err := recordOperation.SearchRecords(test.keywords, test.advisor, test.equipment, "", "", 0)
		if err != nil {
			fail++
			t.Errorf("%s: SearchRecords failed: %v", test.name, err)
			continue
		}
		if len(records) != test.expected {
			fail++
			t.Errorf("%s: got %d records; expected %d", test.name, len(records), test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestSearchRecords: %d pass, %d fail", pass, fail)
}

func TestStoreFailureSurfacesTypedError(t *testing.T) {
	recordOperation, memStore := newTestRecordOperation()
	memStore.failErr = errors.New("backend offline")

	if _, err := recordOperation.GetRecords(&RecordQuery{}); !errors.Is(err, ErrStoreFailure) {
		t.Errorf("GetRecords: expected ErrStoreFailure, got %v", err)
	}
	if _, err := recordOperation.GetRecordByID(1); !errors.Is(err, ErrStoreFailure) {
		t.Errorf("GetRecordByID: expected ErrStoreFailure, got %v", err)
	}
	if _, err := recordOperation.SaveRecord(validInput("alice", "2024-01-10"), nil); !errors.Is(err, ErrStoreFailure) {
		t.Errorf("SaveRecord: expected ErrStoreFailure, got %v", err)
	}
}
