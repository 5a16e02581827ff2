// Package apiv1 holds the JSON messages of the beerfinder.v1 services.
package apiv1
