// Ownership boundary for this package:
//   - the event-type discriminator registry (Register/Lookup)
//   - the catalog of concrete event Go shapes
//   - the mapping from event type to subscription category
package events
