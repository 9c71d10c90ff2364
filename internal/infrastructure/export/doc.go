// Package export renders tariff comparisons as Excel workbooks.
package export
