// Package operation
package operation

type DatabaseOperations struct {
	recordOperation    RecordOperationInterface
	equipmentOperation EquipmentOperationInterface
	settingOperation   SettingOperationInterface
}

func NewDatabaseOperations(
	recordOperation RecordOperationInterface,
	equipmentOperation EquipmentOperationInterface,
	settingOperation SettingOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		recordOperation:    recordOperation,
		equipmentOperation: equipmentOperation,
		settingOperation:   settingOperation,
	}
}

func (db *DatabaseOperations) RecordOperation() RecordOperationInterface {
	return db.recordOperation
}

func (db *DatabaseOperations) EquipmentOperation() EquipmentOperationInterface {
	return db.equipmentOperation
}

func (db *DatabaseOperations) SettingOperation() SettingOperationInterface {
	return db.settingOperation
}
