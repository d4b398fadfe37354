// Package service
package service

import (
	"github.com/mse-lab/labbook/internal/interfaces/operation"
)

type RecordServiceInterface interface {
	GetRecordList(req *RequestRecordList) *ApiResponse[ResponseRecordList]
	SearchRecordList(req *RequestRecordSearch) *ApiResponse[ResponseRecordList]
	ExportRecords(req *RequestRecordExport) (*ResponseRecordExport, *ApiResponse[ResponseRecordList])
	GetRecord(req *RequestRecord) *ApiResponse[ResponseRecord]
	SaveRecord(req *RequestRecordSave) *ApiResponse[ResponseRecord]
	EditRecord(req *RequestRecordEdit) *ApiResponse[ResponseRecord]
	DeleteRecord(req *RequestRecordDelete) *ApiResponse[ResponseRecordDelete]
	BatchDeleteRecords(req *RequestRecordBatchDelete) *ApiResponse[ResponseRecordBatchDelete]
}

type RequestRecordList struct {
	Name       string `query:"name"`
	Advisor    string `query:"advisor"`
	Equipment  string `query:"equipment"`
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	RecentDays int    `query:"recent_days"`
	DateField  string `query:"date_field"`
	OrderBy    string `query:"order_by"`
	Descending bool   `query:"desc"`
	Limit      int    `query:"limit"`
}

type ResponseRecordList struct {
	Items []*operation.BookingRecord `json:"items"`
	Total int                        `json:"total"`
}

type RequestRecordSearch struct {
	Keywords  string `query:"keywords"`
	Advisor   string `query:"advisor"`
	Equipment string `query:"equipment"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Limit     int    `query:"limit"`
}

type RequestRecordExport struct {
	RequestRecordList
}

// ResponseRecordExport CSV字节流, 不走JSON信封
type ResponseRecordExport struct {
	Filename string
	Content  []byte
}

type RequestRecord struct {
	ID int64 `param:"id"`
}

type ResponseRecord operation.BookingRecord

type RequestRecordSave struct {
	operation.RecordInput
}

type RequestRecordEdit struct {
	ID int64 `param:"id"`
	operation.RecordInput
}

type RequestRecordDelete struct {
	ID int64 `param:"id"`
}

type ResponseRecordDelete bool

type RequestRecordBatchDelete struct {
	IDs []int64 `json:"ids"`
}

type ResponseRecordBatchDelete struct {
	Requested int `json:"requested"`
	Deleted   int `json:"deleted"`
}
