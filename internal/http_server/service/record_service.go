// Package service
package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	c "github.com/mse-lab/labbook/internal/interfaces/config"
	"github.com/mse-lab/labbook/internal/interfaces/global"
	"github.com/mse-lab/labbook/internal/interfaces/operation"
	. "github.com/mse-lab/labbook/internal/interfaces/service"
	"github.com/mse-lab/labbook/internal/interfaces/store"
	"github.com/mse-lab/labbook/internal/utils"
)

type RecordService struct {
	config          *c.GeneralConfig
	recordOperation operation.RecordOperationInterface
}

func NewRecordService(
	config *c.GeneralConfig,
	recordOperation operation.RecordOperationInterface,
) *RecordService {
	return &RecordService{
		config:          config,
		recordOperation: recordOperation,
	}
}

var (
	ErrInvalidDate       = ApiStatus{StatusName: "INVALID_DATE", Description: "日期格式不正确", HttpCode: BadRequest}
	SuccessGetRecords    = ApiStatus{StatusName: "GET_RECORDS_SUCCESS", Description: "获取记录列表成功", HttpCode: Ok}
	SuccessSearchRecords = ApiStatus{StatusName: "SEARCH_RECORDS_SUCCESS", Description: "搜索记录成功", HttpCode: Ok}
)

// buildQuery 将列表请求转换为仓库查询. recent_days优先于显式日期范围,
// 区间上界取今天
func (recordService *RecordService) buildQuery(req *RequestRecordList) (*operation.RecordQuery, *ApiStatus) {
	startDate, endDate := req.StartDate, req.EndDate
	if req.RecentDays > 0 {
		now := time.Now()
		endDate = now.Format(global.DateLayout)
		startDate = now.AddDate(0, 0, -(req.RecentDays - 1)).Format(global.DateLayout)
	}
	if startDate != "" && !utils.ValidDate(startDate) {
		return nil, &ErrInvalidDate
	}
	if endDate != "" && !utils.ValidDate(endDate) {
		return nil, &ErrInvalidDate
	}

	conditions := make(map[string]string)
	if req.Name != "" {
		conditions["name"] = req.Name
	}
	if req.Advisor != "" {
		conditions["advisor"] = req.Advisor
	}
	if req.Equipment != "" {
		conditions["equipment"] = req.Equipment
	}

	dateField := operation.DateFieldTestDate
	if req.DateField == string(operation.DateFieldRegisterDatetime) {
		dateField = operation.DateFieldRegisterDatetime
	}

	limit := req.Limit
	if limit <= 0 {
		limit = recordService.config.MaxRecordsPerPage
	}

	orderBy := store.OrderBy{Field: req.OrderBy, Desc: req.Descending}

	return &operation.RecordQuery{
		Conditions: conditions,
		StartDate:  startDate,
		EndDate:    endDate,
		DateField:  dateField,
		OrderBy:    orderBy,
		Limit:      limit,
	}, nil
}

func (recordService *RecordService) GetRecordList(req *RequestRecordList) *ApiResponse[ResponseRecordList] {
	query, status := recordService.buildQuery(req)
	if status != nil {
		return NewApiResponse[ResponseRecordList](status, Unsatisfied, nil)
	}
	records, res := CallDBFuncAndCheckError[[]*operation.BookingRecord, ResponseRecordList](func() (*[]*operation.BookingRecord, error) {
		items, err := recordService.recordOperation.GetRecords(query)
		return &items, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetRecords, Unsatisfied, &ResponseRecordList{
		Items: *records,
		Total: len(*records),
	})
}

func (recordService *RecordService) SearchRecordList(req *RequestRecordSearch) *ApiResponse[ResponseRecordList] {
	if req.StartDate != "" && !utils.ValidDate(req.StartDate) {
		return NewApiResponse[ResponseRecordList](&ErrInvalidDate, Unsatisfied, nil)
	}
	if req.EndDate != "" && !utils.ValidDate(req.EndDate) {
		return NewApiResponse[ResponseRecordList](&ErrInvalidDate, Unsatisfied, nil)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = recordService.config.MaxRecordsPerPage
	}
	records, res := CallDBFuncAndCheckError[[]*operation.BookingRecord, ResponseRecordList](func() (*[]*operation.BookingRecord, error) {
		items, err := recordService.recordOperation.SearchRecords(req.Keywords, req.Advisor, req.Equipment, req.StartDate, req.EndDate, limit)
		return &items, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessSearchRecords, Unsatisfied, &ResponseRecordList{
		Items: *records,
		Total: len(*records),
	})
}

func (recordService *RecordService) ExportRecords(req *RequestRecordExport) (*ResponseRecordExport, *ApiResponse[ResponseRecordList]) {
	query, status := recordService.buildQuery(&req.RequestRecordList)
	if status != nil {
		return nil, NewApiResponse[ResponseRecordList](status, Unsatisfied, nil)
	}
	rows, res := CallDBFuncAndCheckError[[]*operation.RecordRow, ResponseRecordList](func() (*[]*operation.RecordRow, error) {
		items, err := recordService.recordOperation.GetRecordRows(query)
		return &items, err
	})
	if res != nil {
		return nil, res
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(operation.RecordRowHeader); err != nil {
		return nil, NewApiResponse[ResponseRecordList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	for _, row := range *rows {
		if err := writer.Write(row.Fields()); err != nil {
			return nil, NewApiResponse[ResponseRecordList](&ErrDatabaseFail, Unsatisfied, nil)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, NewApiResponse[ResponseRecordList](&ErrDatabaseFail, Unsatisfied, nil)
	}

	return &ResponseRecordExport{
		Filename: fmt.Sprintf("records_%s.csv", time.Now().Format("20060102_150405")),
		Content:  buffer.Bytes(),
	}, nil
}

var SuccessGetRecord = ApiStatus{StatusName: "GET_RECORD_SUCCESS", Description: "获取记录成功", HttpCode: Ok}

func (recordService *RecordService) GetRecord(req *RequestRecord) *ApiResponse[ResponseRecord] {
	if req.ID <= 0 {
		return NewApiResponse[ResponseRecord](&ErrIllegalParam, Unsatisfied, nil)
	}
	record, res := CallDBFuncAndCheckError[operation.BookingRecord, ResponseRecord](func() (*operation.BookingRecord, error) {
		return recordService.recordOperation.GetRecordByID(req.ID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetRecord, Unsatisfied, (*ResponseRecord)(record))
}

var SuccessSaveRecord = ApiStatus{StatusName: "SAVE_RECORD_SUCCESS", Description: "保存记录成功", HttpCode: Ok}

func (recordService *RecordService) SaveRecord(req *RequestRecordSave) *ApiResponse[ResponseRecord] {
	record, res := CallDBFuncAndCheckError[operation.BookingRecord, ResponseRecord](func() (*operation.BookingRecord, error) {
		return recordService.recordOperation.SaveRecord(&req.RecordInput, nil)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessSaveRecord, Unsatisfied, (*ResponseRecord)(record))
}

func (recordService *RecordService) EditRecord(req *RequestRecordEdit) *ApiResponse[ResponseRecord] {
	if req.ID <= 0 {
		return NewApiResponse[ResponseRecord](&ErrIllegalParam, Unsatisfied, nil)
	}
	record, res := CallDBFuncAndCheckError[operation.BookingRecord, ResponseRecord](func() (*operation.BookingRecord, error) {
		return recordService.recordOperation.SaveRecord(&req.RecordInput, &req.ID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessSaveRecord, Unsatisfied, (*ResponseRecord)(record))
}

var SuccessDeleteRecord = ApiStatus{StatusName: "DELETE_RECORD_SUCCESS", Description: "删除记录成功", HttpCode: Ok}

func (recordService *RecordService) DeleteRecord(req *RequestRecordDelete) *ApiResponse[ResponseRecordDelete] {
	if req.ID <= 0 {
		return NewApiResponse[ResponseRecordDelete](&ErrIllegalParam, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseRecordDelete](func() (*interface{}, error) {
		return nil, recordService.recordOperation.DeleteRecord(req.ID)
	}); res != nil {
		return res
	}
	data := ResponseRecordDelete(true)
	return NewApiResponse(&SuccessDeleteRecord, Unsatisfied, &data)
}

var SuccessBatchDelete = ApiStatus{StatusName: "BATCH_DELETE_SUCCESS", Description: "批量删除记录成功", HttpCode: Ok}

func (recordService *RecordService) BatchDeleteRecords(req *RequestRecordBatchDelete) *ApiResponse[ResponseRecordBatchDelete] {
	if len(req.IDs) == 0 {
		return NewApiResponse[ResponseRecordBatchDelete](&ErrLackParam, Unsatisfied, nil)
	}
	deleted, err := recordService.recordOperation.BatchDeleteRecords(req.IDs)
	if err != nil {
		return NewApiResponse[ResponseRecordBatchDelete](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessBatchDelete, Unsatisfied, &ResponseRecordBatchDelete{
		Requested: len(req.IDs),
		Deleted:   deleted,
	})
}
