// Package values provides the building blocks the models are made of: three-state nullable
// fields, unions, calendar dates, string enums and uploadable files.
package values
