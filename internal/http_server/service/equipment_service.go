// Package service
package service

import (
	"strings"

	"github.com/mse-lab/labbook/internal/interfaces/operation"
	. "github.com/mse-lab/labbook/internal/interfaces/service"
)

type EquipmentService struct {
	equipmentOperation operation.EquipmentOperationInterface
}

func NewEquipmentService(equipmentOperation operation.EquipmentOperationInterface) *EquipmentService {
	return &EquipmentService{equipmentOperation: equipmentOperation}
}

var SuccessGetEquipments = ApiStatus{StatusName: "GET_EQUIPMENTS_SUCCESS", Description: "获取设备列表成功", HttpCode: Ok}

func (equipmentService *EquipmentService) GetEquipmentList(req *RequestEquipmentList) *ApiResponse[ResponseEquipmentList] {
	equipments, res := CallDBFuncAndCheckError[[]*operation.Equipment, ResponseEquipmentList](func() (*[]*operation.Equipment, error) {
		items, err := equipmentService.equipmentOperation.SearchEquipmentsByName(req.Keyword)
		return &items, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetEquipments, Unsatisfied, &ResponseEquipmentList{
		Items: *equipments,
		Total: len(*equipments),
	})
}

var SuccessAddEquipment = ApiStatus{StatusName: "ADD_EQUIPMENT_SUCCESS", Description: "添加设备成功", HttpCode: Ok}

func (equipmentService *EquipmentService) AddEquipment(req *RequestEquipmentAdd) *ApiResponse[ResponseEquipment] {
	if strings.TrimSpace(req.Name) == "" {
		return NewApiResponse[ResponseEquipment](&ErrLackParam, Unsatisfied, nil)
	}
	equipment, res := CallDBFuncAndCheckError[operation.Equipment, ResponseEquipment](func() (*operation.Equipment, error) {
		return equipmentService.equipmentOperation.AddEquipment(req.Name)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddEquipment, Unsatisfied, (*ResponseEquipment)(equipment))
}

var SuccessRemoveEquipment = ApiStatus{StatusName: "REMOVE_EQUIPMENT_SUCCESS", Description: "删除设备成功", HttpCode: Ok}

func (equipmentService *EquipmentService) RemoveEquipment(req *RequestEquipmentRemove) *ApiResponse[ResponseEquipmentRemove] {
	if strings.TrimSpace(req.Name) == "" {
		return NewApiResponse[ResponseEquipmentRemove](&ErrLackParam, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEquipmentRemove](func() (*interface{}, error) {
		if req.Purge {
			return nil, equipmentService.equipmentOperation.HardDeleteEquipmentByName(req.Name)
		}
		equipment, err := equipmentService.equipmentOperation.GetEquipmentByName(req.Name)
		if err != nil {
			return nil, err
		}
		return nil, equipmentService.equipmentOperation.SoftDeleteEquipment(equipment.ID)
	}); res != nil {
		return res
	}
	data := ResponseEquipmentRemove(true)
	return NewApiResponse(&SuccessRemoveEquipment, Unsatisfied, &data)
}

var SuccessSyncEquipments = ApiStatus{StatusName: "SYNC_EQUIPMENTS_SUCCESS", Description: "同步设备目录成功", HttpCode: Ok}

func (equipmentService *EquipmentService) SyncEquipments(req *RequestEquipmentSync) *ApiResponse[ResponseEquipmentSync] {
	if req.Names == nil {
		return NewApiResponse[ResponseEquipmentSync](&ErrLackParam, Unsatisfied, nil)
	}
	result, res := CallDBFuncAndCheckError[operation.SyncResult, ResponseEquipmentSync](func() (*operation.SyncResult, error) {
		return equipmentService.equipmentOperation.SyncEquipments(req.Names)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessSyncEquipments, Unsatisfied, (*ResponseEquipmentSync)(result))
}
