/*
Package session owns the payment capture lifecycle: a single state machine
that takes a user from a filled form to a persisted, visible transaction.

States:

	idle -> details_pending -> amount_pending -> processing -> success -> idle
	                  \              |                \
	                   -> error      -> idle (cancel)  -> error

Card details are captured first and validated with first-failure-wins
ordering; the amount is confirmed in a second phase and merged into the
retained input; the gateway then appends the masked record to the ledger.
A validation failure on the amount keeps the card details so the user can
correct and retry. A gateway failure keeps them too, and dismissing the
error resumes at the amount prompt. Success holds a confirmation period
before the session clears itself and refreshes history; resetting the
session first cancels that pending refresh.

Only one payment can be in flight: a submission while another is
processing is rejected with ErrSubmissionInFlight and never reaches the
gateway.

The session is the sole owner of the in-progress input and status.
Presentation and the gateway interact with it exclusively through its
entry points and the Presenter callbacks; neither mutates its state
directly.
*/
package session
