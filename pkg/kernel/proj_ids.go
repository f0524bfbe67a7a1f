package kernel

type JobSpecID string

func NewJobSpecID(id string) JobSpecID { return JobSpecID(id) }
func (j JobSpecID) String() string     { return string(j) }
func (j JobSpecID) IsEmpty() bool      { return string(j) == "" }

type ScreeningID string

func NewScreeningID(id string) ScreeningID { return ScreeningID(id) }
func (s ScreeningID) String() string       { return string(s) }
func (s ScreeningID) IsEmpty() bool        { return string(s) == "" }

type BatchID string

func NewBatchID(id string) BatchID { return BatchID(id) }
func (b BatchID) String() string   { return string(b) }
func (b BatchID) IsEmpty() bool    { return string(b) == "" }
