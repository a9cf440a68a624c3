package DHMap

type state byte

const (
	empty     state = iota //never used since the table was built. Ends every probe sequence.
	tombstone              //held an entry that was deleted. Probing continues past it.
	occupied
)

// slot is one bucket of the table. The zero value is empty. An occupied slot exclusively owns key and val.
type slot struct {
	key, val []byte
	state    state
}
