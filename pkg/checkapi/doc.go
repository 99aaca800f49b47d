// Package checkapi exposes number validation over HTTP.
//
// Routes:
//
//	GET  /health                    liveness probe
//	GET  /profiles                  list configured profiles
//	POST /profiles/{name}/check     check values against a named profile
//	POST /check                     check values against ad hoc constraints
//
// Check requests carry a JSON body with a "values" array of strings. Each
// value is answered with its validity and a stable rejection reason code.
// Request problems (unknown fields, too many values, impossible constraints)
// are reported with the validator package's field errors.
package checkapi
