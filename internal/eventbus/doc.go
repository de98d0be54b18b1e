// Package eventbus implements the event fan-out (C5): matching an
// incoming Event by discriminator and delivering it to every
// subscriber registered for that discriminator.
//
// Ownership boundary:
//   - the subscriber list and its mutex
//   - the three subscription shapes (First/All/Multi)
//   - the drop-on-lag back-pressure policy
package eventbus
