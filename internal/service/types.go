package service

import (
	"fmt"
	"strings"

	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const (
	nameExpense = "EXPENSE"
	nameIncome  = "INCOME"
)

// CategoryType represents a category type tag in the service layer.
type CategoryType int8

const (
	CategoryTypeExpense CategoryType = iota + 1
	CategoryTypeIncome
)

func (t CategoryType) String() string {
	return typeName(int8(t))
}

func (t CategoryType) Valid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// ParseCategoryType accepts a symbolic name in any case.
func ParseCategoryType(s string) (CategoryType, error) {
	v, err := parseTypeName(s)
	return CategoryType(v), err
}

// TransactionType represents a transaction type tag in the service layer.
type TransactionType int8

const (
	TransactionTypeExpense TransactionType = iota + 1
	TransactionTypeIncome
)

func (t TransactionType) String() string {
	return typeName(int8(t))
}

func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// ParseTransactionType accepts a symbolic name in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	v, err := parseTypeName(s)
	return TransactionType(v), err
}

// TransactionTypes lists every transaction type in ordinal order.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeExpense, TransactionTypeIncome}
}

func typeName(v int8) string {
	switch v {
	case 1:
		return nameExpense
	case 2:
		return nameIncome
	}
	return ""
}

func parseTypeName(s string) (int8, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case nameExpense:
		return 1, nil
	case nameIncome:
		return 2, nil
	}
	return 0, fmt.Errorf("unknown type %q: want %s or %s", s, nameExpense, nameIncome)
}

func categoryTypeToStorage(t CategoryType) category.CategoryType {
	return category.CategoryType(t)
}

func categoryTypeFromStorage(t category.CategoryType) (CategoryType, error) {
	converted := CategoryType(t)
	if !converted.Valid() {
		return 0, fmt.Errorf("stored category type %d is not a known type", t)
	}
	return converted, nil
}

func transactionTypeToStorage(t TransactionType) transaction.TransactionType {
	return transaction.TransactionType(t)
}

func transactionTypeFromStorage(t transaction.TransactionType) (TransactionType, error) {
	converted := TransactionType(t)
	if !converted.Valid() {
		return 0, fmt.Errorf("stored transaction type %d is not a known type", t)
	}
	return converted, nil
}
