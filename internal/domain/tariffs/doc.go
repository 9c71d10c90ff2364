// Package tariffs defines electricity and internet tariffs, the monthly cost
// calculator, the savings calculator and the comparators ranking a catalog
// against a customer's usage.
package tariffs
