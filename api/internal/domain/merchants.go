package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type BusinessType string

const (
	BusinessTypeSmall  BusinessType = "SMALL"
	BusinessTypeMedium BusinessType = "MEDIUM"
	BusinessTypeLarge  BusinessType = "LARGE"
)

var BusinessTypes = [...]BusinessType{BusinessTypeSmall, BusinessTypeMedium, BusinessTypeLarge}

func (b BusinessType) IsValid() bool {
	for _, x := range BusinessTypes {
		if x == b {
			return true
		}
	}
	return false
}

func (b BusinessType) String() string {
	return string(b)
}

// case-insensitive: "medium", "Medium" and "MEDIUM" are the same type
func ParseBusinessType(s string) (BusinessType, error) {
	bt := BusinessType(strings.ToUpper(strings.TrimSpace(s)))
	if !bt.IsValid() {
		return "", fmt.Errorf("%w: unknown business type %q", ErrValidation, s)
	}
	return bt, nil
}

func (b *BusinessType) UnmarshalText(text []byte) error {
	bt, err := ParseBusinessType(string(text))
	if err != nil {
		return err
	}
	*b = bt
	return nil
}

// Merchants is the canonical merchant record. The relational store is the system of record,
// the same shape is used as the JSON document kept in the blob store.
type Merchants struct {
	ID           uint          `gorm:"primaryKey" json:"id" validate:"required"`
	Name         string        `gorm:"size:255;not null" json:"name" validate:"required"`
	Email        string        `gorm:"size:255;uniqueIndex;not null;<-:create" json:"email" validate:"required"`
	BusinessType *BusinessType `gorm:"size:16" json:"businessType,omitempty"`
	Phonetics    string        `json:"phonetics,omitempty"`
	CreatedAt    time.Time     `gorm:"not null;<-:create" json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (Merchants) TableName() string {
	return "merchants"
}

// id as it is used for keys in the key-value and blob stores
func (m *Merchants) IDString() string {
	return strconv.FormatUint(uint64(m.ID), 10)
}

var validate = validator.New()

// Validate reports ErrValidation when a mandatory field is missing.
func (m *Merchants) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

type MerchantCreate struct {
	Name         string        `json:"name" validate:"required,max=255"`
	Email        string        `json:"email" validate:"required,email,max=255"`
	BusinessType *BusinessType `json:"businessType"`
}

// only name and business type are mutable
type MerchantUpdate struct {
	Name         string        `json:"name" validate:"required,max=255"`
	BusinessType *BusinessType `json:"businessType"`
}

func BusinessTypePtr(b BusinessType) *BusinessType {
	return &b
}

func (c MerchantCreate) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func (u MerchantUpdate) Validate() error {
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
