// Package services holds the business logic of the registration manager.
//
// Services defined in this package:
// - RegistrationService: owns the catalog and students and is the only
//   code path that changes enrollment
package services
