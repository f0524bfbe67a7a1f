package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type ProfileID string

func NewProfileID(id string) ProfileID { return ProfileID(id) }
func (p ProfileID) String() string     { return string(p) }
func (p ProfileID) IsEmpty() bool      { return string(p) == "" }
