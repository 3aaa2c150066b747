// Package models defines the value objects of the terminal.
//
// Catalog data (Category, Product, ComboOptionGroup, ComboItem) is loaded
// once and never changes while the service runs. Order data (Order,
// OrderLine, ComboSnapshot, Payment) lives in memory for as long as a
// check is open; lines copy their name and price so they never follow
// later catalog changes. Video is the only model kept in device storage.
//
// Relationships use ID strings rather than pointers, with one exception:
// an OrderLine owns its ComboSnapshot.
package models
