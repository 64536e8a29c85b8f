// Package sanitizer cleans free-form phone input before it reaches the
// parser.
//
// All functions are idempotent. Sanitizing never rejects input; text that is
// still unusable afterwards simply fails to parse.
package sanitizer
