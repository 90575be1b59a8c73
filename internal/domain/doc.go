// Package domain contains the core record model for innkeep: customers, staff,
// rooms and reservations, plus the error kinds shared by every layer.
//
// The domain is persistence-agnostic: it does not know about JSON, YAML or the
// filesystem. Infra adapters map into/from these types.
package domain
