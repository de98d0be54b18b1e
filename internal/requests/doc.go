// Ownership boundary for this package:
//   - the request-type discriminator registry (Register/Lookup)
//   - the catalog of concrete request/response Go shapes
package requests
