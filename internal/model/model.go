// Package model contains the request and response shapes served by the
// services. None of them outlive a single request.
package model
