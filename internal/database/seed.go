package database

import (
	"encoding/json"
	"fmt"
	"time"

	approvalModel "medfleet-tracker/internal/approval/model"
	equipmentModel "medfleet-tracker/internal/equipment/model"
	shiftModel "medfleet-tracker/internal/shift/model"
	staffModel "medfleet-tracker/internal/staff/model"
	auditModel "medfleet-tracker/internal/stockaudit/model"
	vehicleModel "medfleet-tracker/internal/vehicle/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed loads the fixed demonstration dataset. Each table is populated only
// when it is empty, so running the seeder again is a no-op.
func (d *Database) Seed() error {
	seeders := []struct {
		name string
		run  func(tx *gorm.DB) error
	}{
		{"equipment", seedEquipment},
		{"vehicles", seedVehicles},
		{"staff", seedStaff},
		{"approval requests", seedApprovals},
		{"shifts", seedShifts},
		{"stock audits", seedAudits},
	}

	for _, s := range seeders {
		if err := d.DB.Transaction(s.run); err != nil {
			return fmt.Errorf("failed to seed %s: %w", s.name, err)
		}
	}
	return nil
}

func tableEmpty(tx *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func uintPtr(u uint) *uint { return &u }

func seedEquipment(tx *gorm.DB) error {
	empty, err := tableEmpty(tx, &equipmentModel.Equipment{})
	if err != nil || !empty {
		return err
	}

	rows := []equipmentModel.Equipment{
		{Name: "Defibrillator AED Pro", Category: equipmentModel.CategoryDevice, SerialNumber: strPtr("SN-001"), Manufacturer: strPtr("Cardiac Science"), Model: strPtr("AED Pro 3000"), Location: strPtr("Ambulance Bay A"), Status: equipmentModel.StatusAvailable, Quantity: 1, Unit: "unit"},
		{Name: "Oxygen Concentrator", Category: equipmentModel.CategoryDevice, SerialNumber: strPtr("SN-002"), Manufacturer: strPtr("Philips"), Model: strPtr("EverFlo"), Location: strPtr("ICU Ward"), Status: equipmentModel.StatusInUse, Quantity: 1, Unit: "unit"},
		{Name: "Surgical Gloves (L)", Category: equipmentModel.CategoryConsumable, Manufacturer: strPtr("MedPro"), Location: strPtr("Supply Room"), Status: equipmentModel.StatusAvailable, Quantity: 500, Unit: "box", ExpirationDate: strPtr("2025-12-31")},
		{Name: "IV Drip Sets", Category: equipmentModel.CategoryConsumable, Manufacturer: strPtr("BD Medical"), Location: strPtr("Supply Room"), Status: equipmentModel.StatusAvailable, Quantity: 200, Unit: "set"},
		{Name: "Stretcher Premium", Category: equipmentModel.CategoryFixedAsset, SerialNumber: strPtr("SN-003"), Manufacturer: strPtr("Ferno"), Model: strPtr("Model 35"), Location: strPtr("Emergency Bay"), Status: equipmentModel.StatusAvailable, Quantity: 1, Unit: "unit"},
		{Name: "Ventilator Model X", Category: equipmentModel.CategoryDevice, SerialNumber: strPtr("SN-004"), Manufacturer: strPtr("Dräger"), Model: strPtr("Evita V800"), Location: strPtr("ICU Ward"), Status: equipmentModel.StatusMaintenance, Quantity: 1, Unit: "unit", CalibrationDueDate: strPtr("2025-06-01")},
		{Name: "Blood Pressure Monitor", Category: equipmentModel.CategoryDevice, SerialNumber: strPtr("SN-005"), Manufacturer: strPtr("Omron"), Model: strPtr("HBP-9030"), Location: strPtr("Outpatient"), Status: equipmentModel.StatusAvailable, Quantity: 1, Unit: "unit"},
		{Name: "Pulse Oximeter", Category: equipmentModel.CategoryDevice, SerialNumber: strPtr("SN-006"), Manufacturer: strPtr("Nonin"), Model: strPtr("9590"), Location: strPtr("Emergency Bay"), Status: equipmentModel.StatusAvailable, Quantity: 1, Unit: "unit"},
		{Name: "Wheelchair Standard", Category: equipmentModel.CategoryFixedAsset, SerialNumber: strPtr("SN-007"), Manufacturer: strPtr("Drive Medical"), Model: strPtr("Cruiser III"), Location: strPtr("Lobby"), Status: equipmentModel.StatusAvailable, Quantity: 3, Unit: "unit"},
		{Name: "Morphine 10mg", Category: equipmentModel.CategoryConsumable, Manufacturer: strPtr("Pfizer"), Location: strPtr("Pharmacy"), Status: equipmentModel.StatusAvailable, Quantity: 100, Unit: "vial", ExpirationDate: strPtr("2026-12-31")},
	}
	return tx.Create(&rows).Error
}

func seedVehicles(tx *gorm.DB) error {
	empty, err := tableEmpty(tx, &vehicleModel.Vehicle{})
	if err != nil || !empty {
		return err
	}

	rows := []vehicleModel.Vehicle{
		{VehicleID: "AMB-001", RegistrationNumber: strPtr("REG-2022-001"), Model: strPtr("Ford Transit"), Year: intPtr(2022), Status: vehicleModel.StatusActive, OxygenLevel: 80, FuelLevel: 75, Equipment: datatypes.JSON("[]")},
		{VehicleID: "AMB-002", RegistrationNumber: strPtr("REG-2021-002"), Model: strPtr("Mercedes Sprinter"), Year: intPtr(2021), Status: vehicleModel.StatusDispatched, OxygenLevel: 60, FuelLevel: 50, Equipment: datatypes.JSON("[]")},
		{VehicleID: "AMB-003", RegistrationNumber: strPtr("REG-2023-003"), Model: strPtr("Toyota HiAce"), Year: intPtr(2023), Status: vehicleModel.StatusMaintenance, OxygenLevel: 30, FuelLevel: 90, Equipment: datatypes.JSON("[]")},
		{VehicleID: "AMB-004", RegistrationNumber: strPtr("REG-2020-004"), Model: strPtr("Ford Transit"), Year: intPtr(2020), Status: vehicleModel.StatusActive, OxygenLevel: 95, FuelLevel: 85, Equipment: datatypes.JSON("[]")},
	}
	return tx.Create(&rows).Error
}

func seedStaff(tx *gorm.DB) error {
	empty, err := tableEmpty(tx, &staffModel.Staff{})
	if err != nil || !empty {
		return err
	}

	rows := []staffModel.Staff{
		{StaffID: "STF-001", Name: "John Smith", Email: strPtr("john.smith@medchain.com"), Role: staffModel.RoleParamedic, Phone: strPtr("555-0101"), AssignedVehicleID: strPtr("AMB-001")},
		{StaffID: "STF-002", Name: "Jane Doe", Email: strPtr("jane.doe@medchain.com"), Role: staffModel.RoleDriver, Phone: strPtr("555-0102"), AssignedVehicleID: strPtr("AMB-001")},
		{StaffID: "STF-003", Name: "Bob Johnson", Email: strPtr("bob.johnson@medchain.com"), Role: staffModel.RoleInventoryManager, Phone: strPtr("555-0103")},
		{StaffID: "STF-004", Name: "Dr. Alice Brown", Email: strPtr("alice.brown@medchain.com"), Role: staffModel.RoleClinicalApprover, Phone: strPtr("555-0104")},
		{StaffID: "STF-005", Name: "Mike Wilson", Email: strPtr("mike.wilson@medchain.com"), Role: staffModel.RoleParamedic, Phone: strPtr("555-0105"), AssignedVehicleID: strPtr("AMB-002")},
		{StaffID: "STF-006", Name: "Sarah Davis", Email: strPtr("sarah.davis@medchain.com"), Role: staffModel.RoleAdmin, Phone: strPtr("555-0106")},
	}
	return tx.Create(&rows).Error
}

func seedApprovals(tx *gorm.DB) error {
	empty, err := tableEmpty(tx, &approvalModel.ApprovalRequest{})
	if err != nil || !empty {
		return err
	}

	rows := []approvalModel.ApprovalRequest{
		{RequestID: "REQ-001", Type: approvalModel.TypeProcurement, RequestedBy: uintPtr(3), ItemName: strPtr("Surgical Gloves (L)"), Quantity: 100, Status: approvalModel.StatusPending},
		{RequestID: "REQ-002", Type: approvalModel.TypeDispatch, RequestedBy: uintPtr(1), ItemName: strPtr("AMB-001"), Quantity: 1, Status: approvalModel.StatusClinicallyApproved, ClinicalApproverID: uintPtr(4)},
		{RequestID: "REQ-003", Type: approvalModel.TypeProcurement, RequestedBy: uintPtr(3), ItemName: strPtr("Ventilator Model X"), Quantity: 2, Status: approvalModel.StatusFulfilled, ClinicalApproverID: uintPtr(4), FulfilledByID: uintPtr(3)},
		{RequestID: "REQ-004", Type: approvalModel.TypeDispatch, RequestedBy: uintPtr(5), ItemName: strPtr("AMB-002"), Quantity: 1, Status: approvalModel.StatusPending},
	}
	for i := range rows {
		rows[i].RequestedAt = time.Now()
	}
	return tx.Create(&rows).Error
}

func seedShifts(tx *gorm.DB) error {
	empty, err := tableEmpty(tx, &shiftModel.Shift{})
	if err != nil || !empty {
		return err
	}

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")

	rows := []shiftModel.Shift{
		{ShiftID: "SHF-001", StaffID: 1, VehicleID: strPtr("AMB-001"), StartTime: today + "T08:00:00", EndTime: today + "T20:00:00", ShiftType: shiftModel.TypeDay},
		{ShiftID: "SHF-002", StaffID: 2, VehicleID: strPtr("AMB-001"), StartTime: today + "T08:00:00", EndTime: today + "T20:00:00", ShiftType: shiftModel.TypeDay},
		{ShiftID: "SHF-003", StaffID: 5, VehicleID: strPtr("AMB-002"), StartTime: today + "T20:00:00", EndTime: tomorrow + "T08:00:00", ShiftType: shiftModel.TypeNight},
	}
	return tx.Create(&rows).Error
}

func seedAudits(tx *gorm.DB) error {
	empty, err := tableEmpty(tx, &auditModel.StockAudit{})
	if err != nil || !empty {
		return err
	}

	monthlyItems, err := json.Marshal([]auditModel.AuditItem{
		{EquipmentID: 1, Name: "Defibrillator AED Pro", Expected: 1},
		{EquipmentID: 2, Name: "Oxygen Concentrator", Expected: 1},
		{EquipmentID: 3, Name: "Surgical Gloves (L)", Expected: 500},
		{EquipmentID: 4, Name: "IV Drip Sets", Expected: 200},
		{EquipmentID: 5, Name: "Stretcher Premium", Expected: 1},
	})
	if err != nil {
		return err
	}

	drugItems, err := json.Marshal([]auditModel.AuditItem{
		{EquipmentID: 3, Name: "Surgical Gloves (L)", Expected: 500},
		{EquipmentID: 10, Name: "Morphine 10mg", Expected: 100},
	})
	if err != nil {
		return err
	}

	rows := []auditModel.StockAudit{
		{AuditID: "AUD-001", Name: "Monthly Equipment Audit", CreatedBy: uintPtr(3), Status: auditModel.StatusInProgress, Items: monthlyItems},
		{AuditID: "AUD-002", Name: "Q1 Drug Audit", CreatedBy: uintPtr(3), Status: auditModel.StatusPending, Items: drugItems},
	}
	return tx.Create(&rows).Error
}
