package domain

// Message identifies one of the fixed advisory texts shared by validation
// and response shaping.
type Message int

const (
	MsgCreated Message = iota
	MsgPaid
	MsgCanceled
	MsgNotFound
	MsgInvalidTargetStatus
	MsgStatusRequired
	MsgAlreadyResolved
	MsgInvalidID
	MsgInvalidBankSlip
	MsgBodyNotProvided

	MsgCantBeNull
	MsgCantBeNullOrBelowZero
	MsgCantBeNullOrEmpty
	MsgDateFormat
	MsgStatusValues

	MsgCreateFailed
	MsgListFailed
	MsgFindFailed
	MsgResolveFailed
)

var messages = map[Message]string{
	MsgCreated:             "201 : Bankslip created",
	MsgPaid:                "200 : Bankslip paid",
	MsgCanceled:            "200 : Bankslip canceled",
	MsgNotFound:            "404 : Bankslip not found with the specified id",
	MsgInvalidTargetStatus: "422 : Invalid bankslip status provided (PENDING)",
	MsgStatusRequired:      "422 : Bankslip status can't be null",
	MsgAlreadyResolved:     "422 : Bankslip already resolved",
	MsgInvalidID:           "400 : Invalid id provided - it must be a valid UUID",
	MsgInvalidBankSlip:     "422 : Invalid bankslip provided. Check HEADERS for more information!",
	MsgBodyNotProvided:     "400 : Bankslip not provided in the request body",

	MsgCantBeNull:            "Can't be null!",
	MsgCantBeNullOrBelowZero: "Can't be null or below zero!",
	MsgCantBeNullOrEmpty:     "Can't be null or empty!",
	MsgDateFormat:            "Date format accepted: (yyyy-MM-dd)",
	MsgStatusValues:          "Status accepted: (PENDING, PAID or CANCELED)",

	MsgCreateFailed:  "Could not create new bank slip: ",
	MsgListFailed:    "Could not find all bank slips: ",
	MsgFindFailed:    "Could not find this particular bank slip: ",
	MsgResolveFailed: "Could not pay or cancel this particular bank slip: ",
}

// Text returns the fixed text for m.
func (m Message) Text() string {
	return messages[m]
}

func (m Message) String() string {
	return m.Text()
}
