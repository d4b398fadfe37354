// Package service
package service

import (
	"github.com/mse-lab/labbook/internal/interfaces/operation"
)

type EquipmentServiceInterface interface {
	GetEquipmentList(req *RequestEquipmentList) *ApiResponse[ResponseEquipmentList]
	AddEquipment(req *RequestEquipmentAdd) *ApiResponse[ResponseEquipment]
	RemoveEquipment(req *RequestEquipmentRemove) *ApiResponse[ResponseEquipmentRemove]
	SyncEquipments(req *RequestEquipmentSync) *ApiResponse[ResponseEquipmentSync]
}

type RequestEquipmentList struct {
	Keyword string `query:"keyword"`
}

type ResponseEquipmentList struct {
	Items []*operation.Equipment `json:"items"`
	Total int                    `json:"total"`
}

type RequestEquipmentAdd struct {
	Name string `json:"name"`
}

type ResponseEquipment operation.Equipment

type RequestEquipmentRemove struct {
	Name  string `param:"name"`
	Purge bool   `query:"purge"`
}

type ResponseEquipmentRemove bool

type RequestEquipmentSync struct {
	Names []string `json:"names"`
}

type ResponseEquipmentSync operation.SyncResult
