/*
Package Go_DHTable holds the hashing primitives shared by the maps and sets of this module.

The tables here use open addressing with double hashing: a key is hashed twice with two polynomial
hashers of distinct prime bases, the first picks the starting slot and the second picks the step.
Table capacities are always prime (see package Primes), so every step is coprime to the capacity and
a probe sequence visits every slot exactly once before it repeats.

# Packages
  - Primes: primality test and next prime, used to choose capacities.
  - Maps/DHMap: the hash table itself. Insert, Search, Delete with tombstones, grow at load 0.7 and
    shrink at load 0.1 along a prime capacity ladder.
  - Maps/OrderedMap: a DHMap with a sorted key index for ordered iteration.
  - Sets/DHSet: a set of byte strings backed by a DHMap.

None of the types are safe for concurrent use; synchronize externally.
*/
package Go_DHTable
