// Package billing contains the billing bounded context: customers, their
// monthly payments, and the arrears calculator that reconciles expected
// billing periods against paid ones.
package billing
