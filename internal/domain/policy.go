package domain

// RejectDeleteWhenReferenced governs removal of vehicles and customers that
// appear in any lease row, open or closed. The conservative rule keeps lease
// history intact; flipping this to allow cascade deletion is a product
// decision, not a code change at the call sites.
const RejectDeleteWhenReferenced = true
