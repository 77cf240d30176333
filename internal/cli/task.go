package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samba-rgb/AIDE/internal/editor"
	"github.com/samba-rgb/AIDE/internal/models"
)

func init() {
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(taskStatusCmd)
	rootCmd.AddCommand(taskPriorityCmd)
	rootCmd.AddCommand(taskListCmd)
	rootCmd.AddCommand(taskEditCmd)
	rootCmd.AddCommand(taskLogUpdateCmd)
}

var taskCmd = &cobra.Command{
	Use:   "task NAME",
	Short: "Create or open a task and edit its log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, created, err := sess.OpenTask(args[0])
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}

		if created {
			fmt.Printf("Task '%s' created successfully!\n", task.Name)
		} else {
			fmt.Printf("Task '%s' already exists. Opening task log file...\n", task.Name)
		}

		if err := editor.Open(task.LogFilePath); err != nil {
			fmt.Printf("Failed to open editor: %v\n", err)
		}
		return nil
	},
}

var taskStatusCmd = &cobra.Command{
	Use:   "task-status NAME STATUS",
	Short: "Change task status (created, in_progress, completed)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := sess.SetTaskStatus(args[0], models.TaskStatus(args[1]))
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		fmt.Printf("Task '%s' status updated to '%s'\n", name, args[1])
		return nil
	},
}

var taskPriorityCmd = &cobra.Command{
	Use:   "task-priority NAME PRIORITY",
	Short: "Change task priority (1 highest to 5 lowest)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("priority must be a number: %w", err)
		}

		name, err := sess.SetTaskPriority(args[0], priority)
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		fmt.Printf("Task '%s' priority updated to %d\n", name, priority)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "task-list",
	Short: "List all tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := sess.Tasks()
		if err != nil {
			return err
		}

		fmt.Println("Tasks:")
		fmt.Println("------")
		for _, t := range tasks {
			fmt.Printf("%s | Priority: %d | Status: %s | Created: %s\n",
				t.Name, t.Priority, t.Status, t.CreatedAt)
		}
		return nil
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "task-edit NAME",
	Short: "Edit a task's log file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sess.TaskLogPath(args[0])
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}

		if err := editor.Open(path); err != nil {
			fmt.Printf("Failed to open editor: %v\n", err)
		}
		return nil
	},
}

var taskLogUpdateCmd = &cobra.Command{
	Use:   "task-log-update NAME TEXT",
	Short: "Append a log entry to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := sess.AppendTaskLog(args[0], args[1])
		if err != nil {
			if reportOutcome(err) {
				return nil
			}
			return err
		}
		fmt.Printf("Log entry added to task '%s'\n", name)
		return nil
	},
}
