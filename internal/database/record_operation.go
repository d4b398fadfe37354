// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/log"
	. "github.com/mse-lab/labbook/internal/interfaces/operation"
	"github.com/mse-lab/labbook/internal/interfaces/store"
	"github.com/mse-lab/labbook/internal/utils"
	"gorm.io/gorm"
)

type RecordOperation struct {
	logger       log.LoggerInterface
	store        store.TableStore
	queryTimeout time.Duration
}

func NewRecordOperation(logger log.LoggerInterface, tableStore store.TableStore, queryTimeout time.Duration) *RecordOperation {
	return &RecordOperation{logger: logger, store: tableStore, queryTimeout: queryTimeout}
}

func (recordOperation *RecordOperation) SaveRecord(input *RecordInput, id *int64) (*BookingRecord, error) {
	if err := CheckRequiredFields(input); err != nil {
		return nil, err
	}
	clean := SanitizeRecord(input)
	now := time.Now()

	fields := cleanRecordRow(clean)
	fields["last_modified"] = now.Format(global.DateTimeLayout)

	ctx, cancel := context.WithTimeout(context.Background(), recordOperation.queryTimeout)
	defer cancel()

	if id != nil { // 更新: 先读原行, 原样保留登记时间与创建日期
		existing, err := recordOperation.GetRecordByID(*id)
		if err != nil {
			return nil, err
		}
		fields["register_datetime"] = existing.RegisterDatetime
		fields["created_at"] = existing.CreatedDate
		row, err := recordOperation.store.Update(ctx, TableEntries, fields, *id)
		if err != nil {
			recordOperation.logger.ErrorF("Update record %d failed: %v", *id, err)
			return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
		recordOperation.logger.InfoF("Updated record %d: %s", *id, clean.Name)
		return decodeRecord(row), nil
	}

	fields["register_datetime"] = now.Format(global.DateTimeLayout)
	fields["created_at"] = now.Format(global.DateLayout)
	row, err := recordOperation.store.Insert(ctx, TableEntries, fields)
	if err != nil {
		recordOperation.logger.ErrorF("Insert record failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	record := decodeRecord(row)
	recordOperation.logger.InfoF("Inserted record %d: %s", record.ID, clean.Name)
	return record, nil
}

func (recordOperation *RecordOperation) GetRecordByID(id int64) (*BookingRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), recordOperation.queryTimeout)
	defer cancel()
	rows, err := recordOperation.store.Select(ctx, TableEntries, map[string]interface{}{"id": id}, store.OrderBy{}, 1)
	if err != nil {
		recordOperation.logger.ErrorF("Select record %d failed: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if len(rows) == 0 {
		return nil, ErrRecordNotFound
	}
	return decodeRecord(rows[0]), nil
}

func (recordOperation *RecordOperation) DeleteRecord(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), recordOperation.queryTimeout)
	defer cancel()
	if err := recordOperation.store.Delete(ctx, TableEntries, id); err != nil {
		recordOperation.logger.ErrorF("Delete record %d failed: %v", id, err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

func (recordOperation *RecordOperation) BatchDeleteRecords(ids []int64) (deleted int, err error) {
	for _, id := range ids {
		if deleteErr := recordOperation.DeleteRecord(id); deleteErr != nil {
			recordOperation.logger.WarnF("Batch delete: record %d failed: %v", id, deleteErr)
			continue
		}
		deleted++
	}
	recordOperation.logger.InfoF("Batch delete: %d of %d records deleted", deleted, len(ids))
	if deleted == 0 && len(ids) > 0 {
		return 0, ErrStoreFailure
	}
	return deleted, nil
}

func (recordOperation *RecordOperation) GetRecords(query *RecordQuery) ([]*BookingRecord, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = global.DefaultQueryLimit
	}
	if limit > global.MaxQueryLimit {
		limit = global.MaxQueryLimit
	}

	conditions := make(map[string]interface{})
	for field, value := range query.Conditions {
		if strings.TrimSpace(value) != "" {
			conditions[field] = value
		}
	}

	orderBy := query.OrderBy
	if orderBy.Field == "" {
		orderBy = store.OrderBy{Field: "test_date", Desc: true}
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordOperation.queryTimeout)
	defer cancel()
	rows, err := recordOperation.store.Select(ctx, TableEntries, conditions, orderBy, limit)
	if err != nil {
		recordOperation.logger.ErrorF("Select records failed (conditions %v): %v", conditions, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	records := make([]*BookingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, decodeRecord(row))
	}

	if query.StartDate != "" && query.EndDate != "" {
		records = filterByDateRange(records, query.DateField, query.StartDate, query.EndDate)
		recordOperation.logger.DebugF("Date range filter on %s kept %d records", dateFieldOrDefault(query.DateField), len(records))
	}
	return records, nil
}

func (recordOperation *RecordOperation) GetRecordRows(query *RecordQuery) ([]*RecordRow, error) {
	records, err := recordOperation.GetRecords(query)
	if err != nil {
		return nil, err
	}
	rows := make([]*RecordRow, 0, len(records))
	for _, record := range records {
		row, ok := projectRecordRow(record)
		if !ok {
			recordOperation.logger.WarnF("Skipping malformed record %d in row projection", record.ID)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (recordOperation *RecordOperation) SearchRecords(keywords, advisor, equipment, startDate, endDate string, limit int) ([]*BookingRecord, error) {
	query := &RecordQuery{
		Conditions: map[string]string{},
		DateField:  DateFieldTestDate,
		Limit:      limit,
	}
	if advisor != "" {
		query.Conditions["advisor"] = advisor
	}
	if equipment != "" {
		query.Conditions["equipment"] = equipment
	}
	if startDate != "" && endDate != "" {
		query.StartDate = startDate
		query.EndDate = endDate
	}
	records, err := recordOperation.GetRecords(query)
	if err != nil {
		return nil, err
	}
	if keywords == "" {
		return records, nil
	}
	needle := strings.ToLower(keywords)
	return utils.Filter(records, func(record *BookingRecord) bool {
		return matchKeyword(record, needle)
	}), nil
}

// matchKeyword 在姓名/领导/设备/备注/联系方式中做大小写不敏感的子串匹配
func matchKeyword(record *BookingRecord, needle string) bool {
	haystacks := []string{
		record.Name,
		stringValue(record.Advisor),
		record.Equipment,
		stringValue(record.Remark),
		stringValue(record.Contact),
	}
	for _, haystack := range haystacks {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func dateFieldOrDefault(field DateField) DateField {
	if field == DateFieldRegisterDatetime {
		return DateFieldRegisterDatetime
	}
	return DateFieldTestDate
}

// filterByDateRange 取回后的闭区间日期过滤. 固定宽度ISO日期串可以直接按
// 字典序比较, 无法解析出日期的记录被丢弃
func filterByDateRange(records []*BookingRecord, field DateField, startDate, endDate string) []*BookingRecord {
	return utils.Filter(records, func(record *BookingRecord) bool {
		var recordDate string
		if dateFieldOrDefault(field) == DateFieldRegisterDatetime {
			recordDate = utils.DatePart(record.RegisterDatetime)
		} else {
			recordDate = utils.DatePart(record.TestDate)
		}
		if recordDate == "" {
			return false
		}
		return startDate <= recordDate && recordDate <= endDate
	})
}

// projectRecordRow 投影为固定列序视图, id缺失或时间戳无法归一时投影失败
func projectRecordRow(record *BookingRecord) (*RecordRow, bool) {
	if record.ID == 0 {
		return nil, false
	}
	return &RecordRow{
		ID:               record.ID,
		RegisterDatetime: record.RegisterDatetime,
		TestDate:         record.TestDate,
		TestTime:         record.TestTime,
		Name:             record.Name,
		Contact:          stringValue(record.Contact),
		Advisor:          stringValue(record.Advisor),
		Equipment:        record.Equipment,
		MachineHours:     record.MachineHours,
		Cost:             record.Cost,
		Remark:           stringValue(record.Remark),
		CreatedAt:        record.CreatedDate,
		LastModified:     record.LastModified,
	}, true
}

// IsNotFound 判断err是否为记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
