package ledger

import "strconv"

const (
	OrderCreatedEventName          = "ledger.order_created"
	DisputeRaisedEventName         = "ledger.dispute_raised"
	DisputeResolvedEventName       = "ledger.dispute_resolved"
	OrderCompletedEventName        = "ledger.order_completed"
	PayoutRequestedEventName       = "ledger.payout_requested"
	OrderTrackingSetEventName      = "ledger.order_tracking_set"
	ArbitratorChangedEventName     = "ledger.arbitrator_changed"
	PlatformFeeUpdatedEventName    = "ledger.platform_fee_updated"
	PlatformFeesWithdrawnEventName = "ledger.platform_fees_withdrawn"
)

// platformKey orders all platform-level events on one partition.
const platformKey = "platform"

// OrderCreated is the notification carrying a newly assigned order id.
type OrderCreated struct {
	OrderID int64  `json:"orderId"`
	Buyer   string `json:"buyer"`
	Seller  string `json:"seller"`
	Amount  string `json:"amount"`
}

func (e OrderCreated) EventName() string { return OrderCreatedEventName }
func (e OrderCreated) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }

type DisputeRaised struct {
	OrderID  int64  `json:"orderId"`
	OpenedBy string `json:"openedBy"`
	Reason   string `json:"reason"`
}

func (e DisputeRaised) EventName() string { return DisputeRaisedEventName }
func (e DisputeRaised) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }

type DisputeResolved struct {
	OrderID int64  `json:"orderId"`
	Outcome string `json:"outcome"`
}

func (e DisputeResolved) EventName() string { return DisputeResolvedEventName }
func (e DisputeResolved) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }

type OrderCompleted struct {
	OrderID      int64  `json:"orderId"`
	SellerPayout string `json:"sellerPayout"`
	Fee          string `json:"fee"`
}

func (e OrderCompleted) EventName() string { return OrderCompletedEventName }
func (e OrderCompleted) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }

// PayoutReason says why value leaves custody.
type PayoutReason string

const (
	PayoutRelease       PayoutReason = "release"
	PayoutRefund        PayoutReason = "refund"
	PayoutFeeWithdrawal PayoutReason = "fee_withdrawal"
)

// PayoutRequested instructs the payment rail to transfer value out of custody.
// It is only emitted after the bookkeeping that justifies it, in the same
// transaction, so a payout can never precede its state change.
type PayoutRequested struct {
	PayoutID    string       `json:"payoutId"`
	OrderID     int64        `json:"orderId,omitempty"`
	Beneficiary string       `json:"beneficiary"`
	Amount      string       `json:"amount"`
	Reason      PayoutReason `json:"reason"`
}

func (e PayoutRequested) EventName() string { return PayoutRequestedEventName }

func (e PayoutRequested) EventKey() string {
	if e.OrderID == 0 {
		return platformKey
	}
	return strconv.FormatInt(e.OrderID, 10)
}

type OrderTrackingSet struct {
	Tracker string `json:"tracker"`
}

func (e OrderTrackingSet) EventName() string { return OrderTrackingSetEventName }
func (e OrderTrackingSet) EventKey() string  { return platformKey }

type ArbitratorChanged struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

func (e ArbitratorChanged) EventName() string { return ArbitratorChangedEventName }
func (e ArbitratorChanged) EventKey() string  { return platformKey }

type PlatformFeeUpdated struct {
	Previous int `json:"previousBasisPoints"`
	Current  int `json:"currentBasisPoints"`
}

func (e PlatformFeeUpdated) EventName() string { return PlatformFeeUpdatedEventName }
func (e PlatformFeeUpdated) EventKey() string  { return platformKey }

type PlatformFeesWithdrawn struct {
	Owner  string `json:"owner"`
	Amount string `json:"amount"`
}

func (e PlatformFeesWithdrawn) EventName() string { return PlatformFeesWithdrawnEventName }
func (e PlatformFeesWithdrawn) EventKey() string  { return platformKey }
