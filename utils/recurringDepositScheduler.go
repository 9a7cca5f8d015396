package utils

import (
	"log"
	"time"

	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/services"

	"github.com/robfig/cron/v3"
)

// InitializeRecurringDepositScheduler sets up the daily allowance run
func InitializeRecurringDepositScheduler() {
	log.Println("[RECURRING-SCHEDULER] Initializing recurring deposit scheduler...")

	c := cron.New()

	// Run daily at 6 AM to process schedules due today
	c.AddFunc("0 6 * * *", func() {
		log.Println("[RECURRING-SCHEDULER] Running daily recurring deposit check...")
		RunRecurringDeposits(time.Now())
		RunBalanceAudit()
	})

	c.Start()
	log.Println("[RECURRING-SCHEDULER] Recurring deposit scheduler started - runs daily at 6 AM")
}

// RunRecurringDeposits executes one batch pass. Re-triggering it for the
// same day is safe: every schedule pays out at most once per month.
func RunRecurringDeposits(runTime time.Time) {
	db := database.Database.Db

	stats, err := services.ProcessRecurringDeposits(db, runTime)
	if err != nil {
		log.Printf("[RECURRING-SCHEDULER] Error fetching due schedules: %v", err)
		return
	}

	log.Printf("[RECURRING-SCHEDULER] Run complete: %d success, %d skipped, %d failed",
		stats.Success, stats.Skipped, stats.Failed)
}

// RunBalanceAudit recomputes balances from the transaction log and logs
// any drift for operators to investigate.
func RunBalanceAudit() {
	db := database.Database.Db

	drifts, err := services.AuditBalances(db)
	if err != nil {
		log.Printf("[BALANCE-AUDIT] Error auditing balances: %v", err)
		return
	}

	if len(drifts) == 0 {
		log.Println("[BALANCE-AUDIT] All account balances match the transaction log")
		return
	}
	for _, d := range drifts {
		log.Printf("[BALANCE-AUDIT] DRIFT account=%d cached=%d computed=%d", d.AccountID, d.Cached, d.Computed)
	}
}
